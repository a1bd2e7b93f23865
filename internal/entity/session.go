package entity

// Profile is the user owning the pipeline.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session resolves the current user. There is no authentication yet, so the
// only implementation is a static profile; swapping in a real one must not
// touch pipeline logic.
type Session interface {
	CurrentUser() Profile
}

type StaticSession struct {
	Profile Profile
}

func NewStaticSession() *StaticSession {
	return &StaticSession{
		Profile: Profile{
			Name:  "John Smith",
			Email: "john.smith@company.com",
			Role:  "Sales Manager",
		},
	}
}

func (s *StaticSession) CurrentUser() Profile {
	return s.Profile
}
