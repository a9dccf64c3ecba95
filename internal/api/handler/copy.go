package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/copywriting"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

type productRequest struct {
	Product domain.ProductInfo `json:"product"`
}

// productHandler cobre as rotas de IA que recebem só o produto.
func productHandler[T any](generate func(ctx context.Context, userID int, product domain.ProductInfo) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req productRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := generate(r.Context(), claims.UserID, req.Product)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar texto")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func GenerateTitle(service copywriting.Copywriter) http.HandlerFunc {
	return productHandler(service.Title)
}

func GenerateDescription(service copywriting.Copywriter) http.HandlerFunc {
	return productHandler(service.Description)
}

func GenerateCallToAction(service copywriting.Copywriter) http.HandlerFunc {
	return productHandler(service.CallToAction)
}

func GenerateCompleteCopy(service copywriting.Copywriter) http.HandlerFunc {
	return productHandler(service.Complete)
}

func GenerateVariations(service copywriting.Copywriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.VariationsRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		variations, err := service.Variations(r.Context(), claims.UserID, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar variações")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"variations": variations})
	}
}

func OptimizeCopy(service copywriting.Copywriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.OptimizeRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		optimized, err := service.Optimize(r.Context(), claims.UserID, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao otimizar texto")
			return
		}

		writeJSON(w, http.StatusOK, optimized)
	}
}
