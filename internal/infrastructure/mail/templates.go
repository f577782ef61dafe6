package mail

import (
	"fmt"
	"html/template"

	"oficina_xpto/internal/domain/entities"
)

type budgetMailData struct {
	Budget   entities.Budget
	Subtotal float64
}

type paymentMailData struct {
	Payment entities.Payment
	Budget  entities.Budget
	Reason  string
}

var mailFuncs = template.FuncMap{
	"brl": func(v float64) string {
		return fmt.Sprintf("R$ %.2f", v)
	},
}

var budgetTemplate = template.Must(template.New("budget").Funcs(mailFuncs).Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Orçamento para Revisão</h2>
  <p>Olá {{.Budget.CustomerName}},</p>

  <p>Segue o orçamento para o seu veículo:</p>

  <div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px;">
    <p><strong>Número do Orçamento:</strong> {{.Budget.BudgetID}}</p>
    <p><strong>Placa do Veículo:</strong> {{.Budget.VehicleInfo.LicensePlate}}</p>
    <p><strong>Marca/Modelo:</strong> {{.Budget.VehicleInfo.Brand}} {{.Budget.VehicleInfo.Model}}</p>

    <h3>Itens:</h3>
    <table style="width: 100%; border-collapse: collapse;">
      <tr style="background-color: #ddd;">
        <th style="padding: 8px; text-align: left;">Descrição</th>
        <th style="padding: 8px; text-align: right;">Qtd</th>
        <th style="padding: 8px; text-align: right;">Valor Unit.</th>
        <th style="padding: 8px; text-align: right;">Total</th>
      </tr>
      {{range .Budget.Items}}
      <tr>
        <td style="padding: 8px; border-bottom: 1px solid #ddd;">{{.Description}}</td>
        <td style="padding: 8px; border-bottom: 1px solid #ddd; text-align: right;">{{.Quantity}}</td>
        <td style="padding: 8px; border-bottom: 1px solid #ddd; text-align: right;">{{brl .UnitPrice}}</td>
        <td style="padding: 8px; border-bottom: 1px solid #ddd; text-align: right;">{{brl .Total}}</td>
      </tr>
      {{end}}
    </table>

    <div style="margin-top: 15px; text-align: right;">
      <p><strong>Subtotal:</strong> {{brl .Subtotal}}</p>
      {{if gt .Budget.DiscountAmount 0.0}}<p><strong>Desconto:</strong> -{{brl .Budget.DiscountAmount}}</p>{{end}}
      {{if gt .Budget.TaxAmount 0.0}}<p><strong>Impostos:</strong> {{brl .Budget.TaxAmount}}</p>{{end}}
      <p style="font-size: 18px;"><strong>TOTAL:</strong> {{brl .Budget.TotalAmount}}</p>
    </div>

    {{if .Budget.Notes}}<p><strong>Observações:</strong> {{.Budget.Notes}}</p>{{end}}

    <p style="color: #666; font-size: 12px;">Este orçamento é válido até {{.Budget.ExpiresAt.Format "02/01/2006"}}</p>
  </div>

  <p>Para aprovar este orçamento, entre em contato conosco informando o número acima.</p>

  <p>Qualquer dúvida, entre em contato conosco.</p>
  <p>Atenciosamente,<br/>Equipe de Oficina</p>
</div>
`))

var paymentConfirmationTemplate = template.Must(template.New("confirmation").Funcs(mailFuncs).Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Pagamento Confirmado</h2>
  <p>Olá {{.Budget.CustomerName}},</p>

  <p>Seu pagamento foi processado com sucesso! Confira os detalhes:</p>

  <div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px;">
    <p><strong>ID do Pagamento:</strong> {{.Payment.PaymentID}}</p>
    <p><strong>Orçamento:</strong> {{.Payment.BudgetID}}</p>
    <p><strong>Valor:</strong> {{brl .Payment.Amount}}</p>
    <p><strong>Método:</strong> {{.Payment.PaymentMethod}}</p>
    <p><strong>Status:</strong> <span style="color: green; font-weight: bold;">CONFIRMADO</span></p>
    {{if .Payment.CompletedAt}}<p><strong>Data:</strong> {{.Payment.CompletedAt.Format "02/01/2006 15:04:05"}}</p>{{end}}
  </div>

  <p>Seu veículo será atendido em breve. Acompanhe o status pelo número do orçamento.</p>

  <p>Obrigado!<br/>Equipe de Oficina</p>
</div>
`))

var paymentFailureTemplate = template.Must(template.New("failure").Funcs(mailFuncs).Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Falha no Pagamento</h2>
  <p>Olá {{.Budget.CustomerName}},</p>

  <p>Infelizmente, o seu pagamento não foi processado. Confira os detalhes:</p>

  <div style="background-color: #fff3cd; padding: 15px; border-radius: 5px;">
    <p><strong>ID do Pagamento:</strong> {{.Payment.PaymentID}}</p>
    <p><strong>Valor:</strong> {{brl .Payment.Amount}}</p>
    <p><strong>Motivo:</strong> {{.Reason}}</p>
  </div>

  <p>Por favor, tente novamente ou entre em contato conosco para mais informações.</p>

  <p>Atenciosamente,<br/>Equipe de Oficina</p>
</div>
`))
