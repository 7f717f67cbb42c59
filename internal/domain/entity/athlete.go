// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Athlete is the single account record of the system: identity, credential and profile.
// Password always holds a bcrypt hash, never the plaintext.
type Athlete struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Age      int    `json:"age,omitempty"`
	Sport    string `json:"sport,omitempty"`
}

// AthletePatch is a partial update. Nil fields keep the stored value.
type AthletePatch struct {
	Username *string
	Password *string // already hashed when it reaches the repository
	Name     *string
	Age      *int
	Sport    *string
}

// Clone returns a copy that shares no state with a.
func (a *Athlete) Clone() *Athlete {
	if a == nil {
		return nil
	}
	cp := *a

	return &cp
}

// Apply merges the non-nil patch fields over a. ID is never touched.
func (a *Athlete) Apply(p AthletePatch) {
	if p.Username != nil {
		a.Username = *p.Username
	}
	if p.Password != nil {
		a.Password = *p.Password
	}
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Age != nil {
		a.Age = *p.Age
	}
	if p.Sport != nil {
		a.Sport = *p.Sport
	}
}
