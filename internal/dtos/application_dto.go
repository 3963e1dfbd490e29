package dtos

type SubmitApplicationRequest struct {
	ApplicantName  string `json:"applicant_name" binding:"required"`
	ApplicantEmail string `json:"applicant_email" binding:"required,email"`
	CoverLetterURL string `json:"cover_letter_url" binding:"required,url"`

	// Answers must line up with the posting's questions; the service
	// enforces the length match.
	Answers []string `json:"answers"`
}
