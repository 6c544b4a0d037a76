package models

type CheckRequest struct {
	Content string `json:"content"`
}

type CheckResponse struct {
	Response string `json:"response"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
