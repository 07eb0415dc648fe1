package estoque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
)

func TestAplicarMovimentacao_EntradaSoma(t *testing.T) {
	novo, err := AplicarMovimentacao(10, entity.TipoEntrada, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, novo)
}

func TestAplicarMovimentacao_SaidaSubtrai(t *testing.T) {
	novo, err := AplicarMovimentacao(10, entity.TipoSaida, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, novo)
}

func TestAplicarMovimentacao_SaidaAteZero(t *testing.T) {
	novo, err := AplicarMovimentacao(10, entity.TipoSaida, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, novo)
}

// Invariante defensiva: o validador deveria barrar antes, mas o mutador nunca
// devolve estoque negativo.
func TestAplicarMovimentacao_RecusaResultadoNegativo(t *testing.T) {
	_, err := AplicarMovimentacao(10, entity.TipoSaida, 11)
	assert.ErrorIs(t, err, domain.ErrEstoqueNegativo)
}
