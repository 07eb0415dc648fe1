package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/application/estoque"
	"github.com/seu-usuario/estoque-api/internal/application/usecase"
	"github.com/seu-usuario/estoque-api/internal/domain"
)

// ProdutoHandler atende as rotas de catálogo (protegido).
type ProdutoHandler struct {
	uc       *usecase.ProdutoUseCase
	consulta *estoque.ConsultaUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase, consulta *estoque.ConsultaUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc, consulta: consulta}
}

// Criar godoc
// @Summary      Cadastrar produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarProdutoRequest  true  "nome (único), quantidade inicial"
// @Success      201   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	produto, err := h.uc.Criar(in)
	if err != nil {
		return erroProdutoParaHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(produto)
}

// Atualizar godoc
// @Summary      Atualizar produto (não altera quantidade)
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.AtualizarProdutoRequest  true  "nome"
// @Success      200   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	produto, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		return erroProdutoParaHTTP(c, err)
	}
	return c.JSON(produto)
}

// Listar godoc
// @Summary      Listar produtos do catálogo
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ProdutoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	list, err := h.consulta.ListarProdutos(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCIA", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"total":    len(list),
		"produtos": list,
	})
}

// BuscarPorID godoc
// @Summary      Buscar produto por ID
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [get]
func (h *ProdutoHandler) BuscarPorID(c *fiber.Ctx) error {
	produto, err := h.consulta.BuscarProduto(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCIA", Message: err.Error()})
	}
	if produto == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(produto)
}

func erroProdutoParaHTTP(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCamposObrigatorios):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CAMPOS_OBRIGATORIOS", Message: err.Error()})
	case errors.Is(err, domain.ErrNomeJaExiste):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOME_DUPLICADO", Message: err.Error()})
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCIA", Message: err.Error()})
	}
}
