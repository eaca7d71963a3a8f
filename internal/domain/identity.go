package domain

// Identity is the public view of a registered account, the only part of a
// credential record kept in memory or in the session slot.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Credential is the persisted account record, looked up by email on login.
// It never leaves the local store; only Public() crosses into API payloads.
type Credential struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// Public strips the secret.
func (c Credential) Public() Identity {
	return Identity{ID: c.ID, Name: c.Name, Email: c.Email}
}

// GuestNamespace scopes collections while nobody is signed in.
const GuestNamespace = "guest"

// NamespaceFor derives the storage partition for the given identity.
func NamespaceFor(id *Identity) string {
	if id == nil {
		return GuestNamespace
	}
	return id.ID
}
