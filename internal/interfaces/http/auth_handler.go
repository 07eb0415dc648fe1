package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/estoque-api/internal/application/auth"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
)

// AuthHandler atende as rotas públicas de autenticação.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Cadastrar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, nome?"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	usuario, err := h.uc.Register(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCamposObrigatorios):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CAMPOS_OBRIGATORIOS", Message: err.Error()})
		case errors.Is(err, domain.ErrEmailJaCadastrado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_DUPLICADO", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCIA", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}

// Login godoc
// @Summary      Autenticar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCamposObrigatorios):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CAMPOS_OBRIGATORIOS", Message: err.Error()})
		case errors.Is(err, domain.ErrUsuarioNaoEncontrado), errors.Is(err, domain.ErrNaoAutorizado):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "CREDENCIAIS_INVALIDAS", Message: "email ou senha incorretos"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCIA", Message: err.Error()})
		}
	}
	return c.JSON(resp)
}
