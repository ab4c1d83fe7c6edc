package entity

// User usuario de acceso al dashboard.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
}

// UserSeed registro de fixture: contraseña en plano, se hashea antes de insertar.
type UserSeed struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}
