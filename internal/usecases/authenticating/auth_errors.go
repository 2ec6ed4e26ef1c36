package authenticating

import "github.com/pkg/errors"

var (
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrUserDisabled        = errors.New("usuário desativado")
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrUserAlreadyExists   = errors.New("email já cadastrado")
	ErrMissingRequiredData = errors.New("email, nome, sobrenome e senha são obrigatórios")
	ErrInvalidToken        = errors.New("token inválido")
)
