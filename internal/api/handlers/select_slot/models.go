package select_slot

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	AvailabilityID int64 `json:"availabilityId"`
}

// SelectSlotResponse HTTP response model
type SelectSlotResponse struct {
	Status   string `json:"status"`
	State    string `json:"state"`
	Selected bool   `json:"selected"` // false, если слот недоступен и выбор не изменился
}
