package cashbook

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/vitrine-erp/vitrine-erp/internal/exchanges"
	"github.com/vitrine-erp/vitrine-erp/internal/payroll"
	"github.com/vitrine-erp/vitrine-erp/internal/purchases"
	"github.com/vitrine-erp/vitrine-erp/internal/receivables"
	"github.com/vitrine-erp/vitrine-erp/internal/sales"
	"github.com/vitrine-erp/vitrine-erp/internal/shared"
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// SaleSource provides the sales ledger.
type SaleSource interface {
	List(ctx context.Context) ([]sales.Sale, error)
}

// FundingSource provides purchases and aplicações.
type FundingSource interface {
	ListPurchases(ctx context.Context) ([]purchases.Purchase, error)
	ListAplicacoes(ctx context.Context) ([]purchases.Aplicacao, error)
}

// ExchangeSource provides exchanges.
type ExchangeSource interface {
	List(ctx context.Context) ([]exchanges.Exchange, error)
}

// SalarySource provides salary payments.
type SalarySource interface {
	List(ctx context.Context) ([]payroll.SalaryPayment, error)
}

// Service reconciles the register for a month.
type Service struct {
	store     store.Store
	sales     SaleSource
	funding   FundingSource
	exchanges ExchangeSource
	salaries  SalarySource
}

// NewService builds a Service instance.
func NewService(st store.Store, saleSrc SaleSource, fundingSrc FundingSource, exchangeSrc ExchangeSource, salarySrc SalarySource) *Service {
	return &Service{store: st, sales: saleSrc, funding: fundingSrc, exchanges: exchangeSrc, salaries: salarySrc}
}

// CarriedBalances loads the month-to-balance carry map. Values are kept
// as strings in storage; a missing or unparseable entry reads as zero.
func (s *Service) CarriedBalances(ctx context.Context) (map[string]string, error) {
	var carried map[string]string
	if err := s.store.Load(ctx, store.CollSaldosAnteriores, &carried); err != nil {
		return nil, err
	}
	if carried == nil {
		carried = make(map[string]string)
	}
	return carried, nil
}

// SetCarriedBalance writes one month's carried balance by hand.
func (s *Service) SetCarriedBalance(ctx context.Context, month, value string) error {
	if _, err := shared.AddMonths(month, 0); err != nil {
		return fmt.Errorf("cashbook: %v: %w", err, shared.ErrValidation)
	}
	carried, err := s.CarriedBalances(ctx)
	if err != nil {
		return err
	}
	carried[month] = value
	return s.store.Save(ctx, store.CollSaldosAnteriores, carried)
}

// MonthlyCashFlow reconciles one YYYY-MM month.
func (s *Service) MonthlyCashFlow(ctx context.Context, month string) (*Report, error) {
	if _, err := shared.AddMonths(month, 0); err != nil {
		return nil, fmt.Errorf("cashbook: %v: %w", err, shared.ErrValidation)
	}
	var (
		allSales       []sales.Sale
		allPurchases   []purchases.Purchase
		aplicacoes     []purchases.Aplicacao
		allExchanges   []exchanges.Exchange
		salaryPayments []payroll.SalaryPayment
		carried        map[string]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { allSales, err = s.sales.List(gctx); return err })
	g.Go(func() (err error) { allPurchases, err = s.funding.ListPurchases(gctx); return err })
	g.Go(func() (err error) { aplicacoes, err = s.funding.ListAplicacoes(gctx); return err })
	g.Go(func() (err error) { allExchanges, err = s.exchanges.List(gctx); return err })
	g.Go(func() (err error) { salaryPayments, err = s.salaries.List(gctx); return err })
	g.Go(func() (err error) { carried, err = s.CarriedBalances(gctx); return err })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := compute(month, allSales, allPurchases, aplicacoes, allExchanges, salaryPayments, carried)
	return &report, nil
}

// CloseMonth reconciles the month and carries its final balance into
// the next month. Repeating the close overwrites the same carry entry.
func (s *Service) CloseMonth(ctx context.Context, month string) (*Report, error) {
	report, err := s.MonthlyCashFlow(ctx, month)
	if err != nil {
		return nil, err
	}
	next, err := shared.NextMonth(month)
	if err != nil {
		return nil, fmt.Errorf("cashbook: %v: %w", err, shared.ErrValidation)
	}
	carried, err := s.CarriedBalances(ctx)
	if err != nil {
		return nil, err
	}
	carried[next] = fmt.Sprintf("%.2f", report.SaldoFinal)
	if err := s.store.Save(ctx, store.CollSaldosAnteriores, carried); err != nil {
		return nil, err
	}
	return report, nil
}

func compute(month string, allSales []sales.Sale, allPurchases []purchases.Purchase, aplicacoes []purchases.Aplicacao, allExchanges []exchanges.Exchange, salaryPayments []payroll.SalaryPayment, carried map[string]string) Report {
	var in Inflows
	var out Outflows

	for _, sale := range allSales {
		saleMonth := shared.MonthKey(sale.Date.Local())
		for _, leg := range sale.Payments {
			if leg.Type == sales.PaymentAPrazo {
				// collection timing drives this bucket, not sale timing
				amount := receivables.InstallmentAmount(leg)
				for _, inst := range leg.PaymentDates {
					if inst.Status == sales.InstallmentPago && shared.MonthOfDate(inst.PaymentDate) == month {
						in.APrazoRecebido += amount
					}
				}
				continue
			}
			if saleMonth == month {
				in.VendasAVista += leg.Amount
			}
		}
	}

	if raw, ok := carried[month]; ok {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			in.SaldoAnterior = parsed
		}
	}
	in.Total = in.VendasAVista + in.APrazoRecebido + in.SaldoAnterior

	for _, p := range allPurchases {
		inMonth := shared.MonthKey(p.Date.Local()) == month
		for _, leg := range p.Payments {
			if leg.Source == purchases.SourceStoreCash {
				if inMonth {
					out.Compras += leg.Amount
				}
				continue
			}
			for _, receipt := range leg.PaymentsReceived {
				if shared.MonthOfDate(receipt.Date) == month {
					out.Investidores += receipt.Amount
				}
			}
		}
	}
	for _, a := range aplicacoes {
		inMonth := shared.MonthKey(a.Date.Local()) == month
		for _, leg := range a.Payments {
			if leg.Source == purchases.SourceStoreCash {
				if inMonth {
					out.Aplicacoes += leg.Amount
				}
				continue
			}
			for _, receipt := range leg.PaymentsReceived {
				if shared.MonthOfDate(receipt.Date) == month {
					out.Investidores += receipt.Amount
				}
			}
		}
	}

	for _, e := range allExchanges {
		if e.PaymentMethod == exchanges.MethodDinheiro && shared.MonthKey(e.Date.Local()) == month {
			out.Trocas += e.TotalValue
		}
	}

	for _, payment := range salaryPayments {
		if payment.Month == month {
			out.Salarios += payment.Amount
		}
	}
	out.Total = out.Compras + out.Aplicacoes + out.Trocas + out.Investidores + out.Salarios

	saldo := in.Total - out.Total
	return Report{
		Month:           month,
		Entradas:        in,
		Saidas:          out,
		SaldoFinal:      saldo,
		SaldoFinalLabel: shared.FormatBRL(saldo),
	}
}
