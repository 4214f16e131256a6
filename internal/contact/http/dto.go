package http

type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"max=200"`
	Body    string `json:"body" binding:"required,max=5000"`
}

type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type AcceptedResponse struct {
	Status string `json:"status"`
}
