package checkout

// PayRequest is the pay-click payload. The offer itself comes from the
// session's selection, never from the client.
type PayRequest struct {
	PromoCode string `json:"promo_code"`
}

// PayResponse confirms a completed purchase.
type PayResponse struct {
	Order   *Order `json:"order"`
	Message string `json:"message"`
}
