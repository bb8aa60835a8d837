package domain

// Inquiry is a contact-form submission from the storefront.
type Inquiry struct {
	Name    string `json:"name" form:"name"`
	Title   string `json:"title" form:"title"`
	Message string `json:"message" form:"message"`
	Email   string `json:"email" form:"email"`
}

// TemplateParams maps the inquiry onto the email template variables.
func (i Inquiry) TemplateParams() map[string]string {
	return map[string]string{
		"name":       i.Name,
		"title":      i.Title,
		"message":    i.Message,
		"user_email": i.Email,
	}
}
