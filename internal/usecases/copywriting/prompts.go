package copywriting

import (
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai/jsonschema"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/llm"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const (
	systemCopywriter = "Você é um especialista em tráfego pago e copywriting para anúncios de Facebook e Instagram. Crie conteúdo persuasivo, direto e otimizado para conversão."
	systemCTA        = "Você é um especialista em tráfego pago. Escolha o CTA mais adequado baseado no produto e objetivo."
	systemJSON       = "Você é um especialista em tráfego pago e copywriting para anúncios de Facebook e Instagram. Retorne sempre em formato JSON válido."
	systemOptimizer  = "Você é um especialista em otimização de anúncios para Facebook e Instagram. Retorne sempre em formato JSON válido."

	intro = "Você é um especialista em tráfego pago e copywriting para Facebook e Instagram."
)

var ctaOptions = map[domain.CallToAction]string{
	domain.CTAShopNow:    "Comprar Agora",
	domain.CTALearnMore:  "Saiba Mais",
	domain.CTASignUp:     "Cadastre-se",
	domain.CTADownload:   "Baixar",
	domain.CTAGetQuote:   "Solicitar Orçamento",
	domain.CTAContactUs:  "Entre em Contato",
	domain.CTAApplyNow:   "Inscreva-se",
	domain.CTABookTravel: "Reservar Viagem",
	domain.CTAGetOffer:   "Obter Oferta",
	domain.CTASubscribe:  "Assinar",
}

// adCopySchema exige title, body e callToAction, sem campos extras.
var adCopySchema = &llm.Schema{
	Name: "ad_copy",
	Definition: jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"title":        {Type: jsonschema.String, Description: "Título do anúncio (máximo 40 caracteres)"},
			"body":         {Type: jsonschema.String, Description: "Descrição do anúncio (máximo 125 caracteres)"},
			"callToAction": {Type: jsonschema.String, Description: "Código do Call-to-Action"},
		},
		Required:             []string{"title", "body", "callToAction"},
		AdditionalProperties: false,
	},
}

var optimizedCopySchema = &llm.Schema{
	Name: "optimized_ad_copy",
	Definition: jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"title":        {Type: jsonschema.String, Description: "Título otimizado"},
			"body":         {Type: jsonschema.String, Description: "Descrição otimizada"},
			"callToAction": {Type: jsonschema.String, Description: "Código do Call-to-Action"},
			"improvements": {Type: jsonschema.String, Description: "Breve explicação das melhorias"},
		},
		Required:             []string{"title", "body", "callToAction", "improvements"},
		AdditionalProperties: false,
	},
}

type productFields struct {
	description bool
	price       bool
	benefits    bool
}

func writeProduct(b *strings.Builder, p domain.ProductInfo, f productFields) {
	fmt.Fprintf(b, "Produto: %s\n", p.Name)
	if f.description && p.Description != "" {
		fmt.Fprintf(b, "Descrição: %s\n", p.Description)
	}
	if p.Category != "" {
		fmt.Fprintf(b, "Categoria: %s\n", p.Category)
	}
	if f.price && p.Price != "" {
		fmt.Fprintf(b, "Preço: %s\n", p.Price)
	}
	if p.TargetAudience != "" {
		fmt.Fprintf(b, "Público-alvo: %s\n", p.TargetAudience)
	}
	if f.benefits && len(p.Benefits) > 0 {
		fmt.Fprintf(b, "Benefícios: %s\n", strings.Join(p.Benefits, ", "))
	}
	if f.benefits && len(p.Keywords) > 0 {
		fmt.Fprintf(b, "Palavras-chave: %s\n", strings.Join(p.Keywords, ", "))
	}
}

func titlePrompt(p domain.ProductInfo) []llm.Message {
	var b strings.Builder
	b.WriteString(intro + "\n\n")
	writeProduct(&b, p, productFields{description: true, price: true})
	b.WriteString(`
Crie um título CURTO e IMPACTANTE para um anúncio do Facebook/Instagram (máximo 40 caracteres).
O título deve:
- Ser chamativo e despertar curiosidade
- Destacar o principal benefício
- Usar linguagem persuasiva
- Ser direto ao ponto

Responda APENAS com o título, sem explicações.`)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemCopywriter},
		{Role: llm.RoleUser, Content: b.String()},
	}
}

func descriptionPrompt(p domain.ProductInfo) []llm.Message {
	var b strings.Builder
	b.WriteString(intro + "\n\n")
	writeProduct(&b, p, productFields{description: true, price: true, benefits: true})
	b.WriteString(`
Crie uma descrição persuasiva para o anúncio (máximo 125 caracteres).
A descrição deve:
- Destacar os principais benefícios
- Criar senso de urgência ou escassez (se apropriado)
- Usar linguagem emocional
- Incluir prova social se possível
- Ser clara e objetiva

Responda APENAS com a descrição, sem explicações.`)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemCopywriter},
		{Role: llm.RoleUser, Content: b.String()},
	}
}

func callToActionPrompt(p domain.ProductInfo) []llm.Message {
	var b strings.Builder
	b.WriteString(intro + "\n\n")
	writeProduct(&b, p, productFields{})
	b.WriteString("\nSugira o melhor tipo de Call-to-Action (CTA) para este anúncio.\n")
	b.WriteString("Escolha APENAS UMA das opções abaixo que seja mais adequada:\n\n")
	for _, cta := range domain.CallToActions {
		fmt.Fprintf(&b, "%s - %s\n", cta, ctaOptions[cta])
	}
	b.WriteString("\nResponda APENAS com o código do CTA (ex: SHOP_NOW), sem explicações.")

	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemCTA},
		{Role: llm.RoleUser, Content: b.String()},
	}
}

func completeCopyPrompt(p domain.ProductInfo) []llm.Message {
	codes := make([]string, 0, len(domain.CallToActions))
	for _, cta := range domain.CallToActions {
		codes = append(codes, string(cta))
	}

	var b strings.Builder
	b.WriteString(intro + "\n\n")
	writeProduct(&b, p, productFields{description: true, price: true, benefits: true})
	fmt.Fprintf(&b, `
Crie um anúncio completo com:
1. Título (máximo 40 caracteres) - chamativo e impactante
2. Descrição (máximo 125 caracteres) - persuasiva com benefícios
3. Call-to-Action - escolha o mais adequado entre: %s`, strings.Join(codes, ", "))

	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemJSON},
		{Role: llm.RoleUser, Content: b.String()},
	}
}

func optimizePrompt(currentTitle, currentBody string, p domain.ProductInfo) []llm.Message {
	var b strings.Builder
	b.WriteString(intro + "\n\n")
	fmt.Fprintf(&b, "Produto: %s\n\nCOPY ATUAL:\nTítulo: %s\nDescrição: %s\n", p.Name, currentTitle, currentBody)
	b.WriteString(`
Analise e OTIMIZE este anúncio para melhorar a taxa de conversão.
Considere:
- Clareza da mensagem
- Apelo emocional
- Senso de urgência
- Benefícios vs características
- Linguagem persuasiva`)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemOptimizer},
		{Role: llm.RoleUser, Content: b.String()},
	}
}
