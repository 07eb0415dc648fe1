package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/application/estoque"
	"github.com/seu-usuario/estoque-api/internal/domain"
)

// MovimentacaoHandler atende as rotas do ledger de movimentações (protegido).
type MovimentacaoHandler struct {
	registrar *estoque.RegistrarMovimentacaoUseCase
	consulta  *estoque.ConsultaUseCase
}

// NewMovimentacaoHandler constrói o handler.
func NewMovimentacaoHandler(registrar *estoque.RegistrarMovimentacaoUseCase, consulta *estoque.ConsultaUseCase) *MovimentacaoHandler {
	return &MovimentacaoHandler{registrar: registrar, consulta: consulta}
}

// Registrar godoc
// @Summary      Registrar movimentação de estoque
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimentacaoRequest  true  "produto, tipo (entrada|saida), quantidade, data (aaaa-mm-dd), lote, fornecedor?"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *MovimentacaoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	mov, err := h.registrar.Registrar(c.Context(), in, GetUserID(c))
	if err != nil {
		return rejeicaoParaHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mov)
}

// Listar godoc
// @Summary      Histórico de movimentações (ordem de inserção)
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        produto  query  string  false  "Filtrar pelo nome do produto"
// @Param        limit    query  int     false  "Tamanho da página"
// @Param        offset   query  int     false  "Deslocamento"
// @Success      200  {array}   dto.MovimentacaoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [get]
func (h *MovimentacaoHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	list, err := h.consulta.ListarMovimentacoes(c.Query("produto"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCIA", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"total":         len(list),
		"movimentacoes": list,
	})
}

// rejeicaoParaHTTP mapeia a taxonomia de erros do domínio para HTTP.
// Rejeições de validação são condições esperadas e corrigíveis pelo usuário;
// estoque negativo é quebra de invariante; o resto é falha de persistência.
func rejeicaoParaHTTP(c *fiber.Ctx, err error) error {
	var insuficiente *domain.ErrEstoqueInsuficiente
	switch {
	case errors.Is(err, domain.ErrCamposObrigatorios):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CAMPOS_OBRIGATORIOS", Message: err.Error()})
	case errors.Is(err, domain.ErrProdutoNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUTO_NAO_ENCONTRADO", Message: err.Error()})
	case errors.Is(err, domain.ErrQuantidadeInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "QUANTIDADE_INVALIDA", Message: err.Error()})
	case errors.Is(err, domain.ErrDataInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DATA_INVALIDA", Message: err.Error()})
	case errors.As(err, &insuficiente):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"code":       "ESTOQUE_INSUFICIENTE",
			"message":    insuficiente.Error(),
			"disponivel": insuficiente.Disponivel,
		})
	case errors.Is(err, domain.ErrEstoqueNegativo):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INVARIANTE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCIA", Message: err.Error()})
	}
}
