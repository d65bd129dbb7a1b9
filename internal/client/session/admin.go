package session

// Admin bandera de sesión de administrador contra una clave estática.
type Admin struct {
	secret        string
	authenticated bool
}

func NewAdmin(secret string) *Admin { return &Admin{secret: secret} }

// Login compara por igualdad; con clave vacía nunca autentica.
func (a *Admin) Login(password string) bool {
	a.authenticated = a.secret != "" && password == a.secret
	return a.authenticated
}

func (a *Admin) Logout() { a.authenticated = false }

func (a *Admin) Authenticated() bool { return a.authenticated }
