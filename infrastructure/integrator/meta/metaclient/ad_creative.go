package metaclient

import (
	"context"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) CreateAdCreative(ctx context.Context, token, adAccountID string, params metadomain.AdCreativeParams) (string, error) {
	if params.ObjectStorySpec.PageID == "" {
		return "", errors.New("page_id é obrigatório para criar o criativo")
	}

	body := map[string]any{
		"name":              params.Name,
		"object_story_spec": params.ObjectStorySpec,
	}

	var created metadomain.CreatedObject
	if err := c.post(ctx, adAccountPath(adAccountID, "adcreatives"), token, body, &created); err != nil {
		return "", err
	}

	return created.ID, nil
}

type uploadImageResponse struct {
	Images map[string]metadomain.AdImage `json:"images"`
}

// UploadImage envia a imagem por URL e devolve o hash usado no criativo.
func (c *MetaClient) UploadImage(ctx context.Context, token, adAccountID, imageURL string) (string, error) {
	var resp uploadImageResponse
	if err := c.post(ctx, adAccountPath(adAccountID, "adimages"), token, map[string]any{"url": imageURL}, &resp); err != nil {
		return "", err
	}

	for _, img := range resp.Images {
		if img.Hash != "" {
			return img.Hash, nil
		}
	}

	return "", errors.New("API do Meta não retornou o hash da imagem")
}

func (c *MetaClient) UploadVideo(ctx context.Context, token, adAccountID, videoURL string) (string, error) {
	var created metadomain.CreatedObject
	if err := c.post(ctx, adAccountPath(adAccountID, "advideos"), token, map[string]any{"file_url": videoURL}, &created); err != nil {
		return "", err
	}

	if created.ID == "" {
		return "", errors.New("API do Meta não retornou o id do vídeo")
	}

	return created.ID, nil
}
