package response

// MessageResponse acknowledges an accepted request.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is the polling projection of a session's run.
type StatusResponse struct {
	Running   bool   `json:"running"`
	Progress  string `json:"progress"`
	Completed bool   `json:"completed"`
	Count     int    `json:"count"`
}
