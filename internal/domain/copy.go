package domain

import "strings"

type CallToAction string

const (
	CTAShopNow    CallToAction = "SHOP_NOW"
	CTALearnMore  CallToAction = "LEARN_MORE"
	CTASignUp     CallToAction = "SIGN_UP"
	CTADownload   CallToAction = "DOWNLOAD"
	CTAGetQuote   CallToAction = "GET_QUOTE"
	CTAContactUs  CallToAction = "CONTACT_US"
	CTAApplyNow   CallToAction = "APPLY_NOW"
	CTABookTravel CallToAction = "BOOK_TRAVEL"
	CTAGetOffer   CallToAction = "GET_OFFER"
	CTASubscribe  CallToAction = "SUBSCRIBE"
)

// CallToActions é o vocabulário fechado aceito pela Meta.
var CallToActions = []CallToAction{
	CTAShopNow,
	CTALearnMore,
	CTASignUp,
	CTADownload,
	CTAGetQuote,
	CTAContactUs,
	CTAApplyNow,
	CTABookTravel,
	CTAGetOffer,
	CTASubscribe,
}

func IsValidCallToAction(s string) bool {
	for _, cta := range CallToActions {
		if string(cta) == s {
			return true
		}
	}
	return false
}

// NormalizeCallToAction devolve LEARN_MORE para qualquer valor fora do vocabulário.
func NormalizeCallToAction(s string) CallToAction {
	v := strings.ToUpper(strings.TrimSpace(s))
	v = strings.Trim(v, `"'.`)
	v = strings.ReplaceAll(v, " ", "_")
	if IsValidCallToAction(v) {
		return CallToAction(v)
	}
	return CTALearnMore
}

type ProductInfo struct {
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Category       string   `json:"category,omitempty"`
	Price          string   `json:"price,omitempty"`
	TargetAudience string   `json:"targetAudience,omitempty"`
	Benefits       []string `json:"benefits,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
}

type AdCopy struct {
	Title        string       `json:"title"`
	Body         string       `json:"body"`
	CallToAction CallToAction `json:"callToAction"`
}

type OptimizedAdCopy struct {
	AdCopy
	Improvements string `json:"improvements,omitempty"`
}

type VariationsRequest struct {
	Product ProductInfo `json:"product"`
	Count   int         `json:"count"`
}

type OptimizeRequest struct {
	CurrentTitle string      `json:"currentTitle"`
	CurrentBody  string      `json:"currentBody"`
	Product      ProductInfo `json:"product"`
}

type TextResponse struct {
	Text string `json:"text"`
}
