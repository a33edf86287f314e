package confirm_dialog

// DialogResponse HTTP response model
type DialogResponse struct {
	Status      string `json:"status"`
	State       string `json:"state"`
	ConfirmOpen bool   `json:"confirmOpen"`
}
