package auth

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier проверяет пару логин/пароль. Сейчас реализация одна,
// со статической парой из конфига; интерфейс оставлен чтобы потом
// подключить настоящую таблицу пользователей, не трогая хэндлеры.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

type StaticVerifier struct {
	username     string
	passwordHash []byte
}

// NewStaticVerifier хэширует пароль при старте, в памяти он в открытом
// виде не хранится.
func NewStaticVerifier(username, password string) (*StaticVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &StaticVerifier{
		username:     username,
		passwordHash: hash,
	}, nil
}

func (v *StaticVerifier) Verify(username, password string) bool {
	if username != v.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil
}
