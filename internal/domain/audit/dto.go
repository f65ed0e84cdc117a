package audit

type EntryResponse struct {
	ID        string  `json:"id"`
	Username  *string `json:"username,omitempty"`
	Action    string  `json:"action"`
	Details   *string `json:"details,omitempty"`
	IPAddress *string `json:"ip_address,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func ToEntryResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Username:  e.Username,
		Action:    e.Action,
		Details:   e.Details,
		IPAddress: e.IPAddress,
		CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
