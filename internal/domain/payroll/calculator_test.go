package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/farmacia-suite/internal/domain/payroll"
)

func TestCalculate_SalarioMinimo(t *testing.T) {
	res := payroll.Calculate(payroll.Input{
		BaseSalary: decimal.NewFromInt(1_423_500),
	})

	assert.True(t, res.Gross.Equal(decimal.NewFromInt(1_423_500)))
	assert.True(t, res.TransportAllow.Equal(decimal.NewFromInt(200_000)),
		"salario mínimo recibe auxilio de transporte")
	assert.True(t, res.HealthDeduct.Equal(decimal.NewFromInt(56_940)), "salud 4%%: %s", res.HealthDeduct)
	assert.True(t, res.PensionDeduct.Equal(decimal.NewFromInt(56_940)))
	// neto = 1.423.500 + 200.000 - 56.940 - 56.940
	assert.True(t, res.Net.Equal(decimal.NewFromInt(1_509_620)), "neto: %s", res.Net)
}

func TestCalculate_SalarioAltoSinAuxilio(t *testing.T) {
	res := payroll.Calculate(payroll.Input{
		BaseSalary: decimal.NewFromInt(5_000_000),
		Bonuses:    decimal.NewFromInt(300_000),
	})

	assert.True(t, res.TransportAllow.IsZero(), "más de 2 SMMLV no recibe auxilio")
	assert.True(t, res.Gross.Equal(decimal.NewFromInt(5_300_000)))
	assert.True(t, res.HealthDeduct.Equal(decimal.NewFromInt(200_000)))
	assert.True(t, res.Net.Equal(decimal.NewFromInt(4_900_000)), "neto: %s", res.Net)
}

func TestCalculate_DeduccionesAdicionales(t *testing.T) {
	res := payroll.Calculate(payroll.Input{
		BaseSalary:  decimal.NewFromInt(2_000_000),
		OtherDeduct: decimal.NewFromInt(150_000),
	})
	// 2.000.000 + 200.000 - 80.000 - 80.000 - 150.000
	assert.True(t, res.Net.Equal(decimal.NewFromInt(1_890_000)), "neto: %s", res.Net)
}

func TestCalculate_NetoNuncaNegativo(t *testing.T) {
	res := payroll.Calculate(payroll.Input{
		BaseSalary:  decimal.NewFromInt(100_000),
		OtherDeduct: decimal.NewFromInt(9_999_999),
	})
	assert.True(t, res.Net.IsZero(), "el neto se trunca en cero, no queda negativo")
}
