package dto

type RegisterVisitorInput struct {
	Name   string
	Gender string
}

type VisitorOutput struct {
	ID        string
	Name      string
	Gender    string
	VisitedAt string
}

type LoginInput struct {
	Email    string
	Password string
}

type SetCredentialInput struct {
	Email    string
	Password string
}

type SessionOutput struct {
	Email          string
	LoggedInAt     string
	LastActivityAt string
}
