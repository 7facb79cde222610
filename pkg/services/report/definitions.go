package report

import "github.com/de-tools/report-atlas/pkg/models/domain"

const (
	CustomerStatement = "Customer Statement Report"
	Payable           = "Payable Report"
	Receivable        = "Receivable Report"
)

const (
	docSalesInvoice    = "Sales Invoice"
	docPurchaseInvoice = "Purchase Invoice"
)

func dateRange(required bool) []domain.FilterField {
	from, to := domain.MonthAgo, domain.Today
	return []domain.FilterField{
		{
			FieldName: domain.FieldFromDate,
			Label:     "From Date",
			FieldType: domain.FieldTypeDate,
			Default:   &from,
			Required:  required,
		},
		{
			FieldName: domain.FieldToDate,
			Label:     "To Date",
			FieldType: domain.FieldTypeDate,
			Default:   &to,
			Required:  required,
		},
	}
}

func invoiceColumns(extra ...domain.Column) []domain.Column {
	return append([]domain.Column{
		{FieldName: "name", FieldType: domain.FieldTypeLink},
		{FieldName: "posting_date", FieldType: domain.FieldTypeDate},
		{FieldName: "grand_total", FieldType: domain.FieldTypeCurrency},
		{FieldName: "outstanding_amount", FieldType: domain.FieldTypeCurrency},
		{FieldName: "cost_center", FieldType: domain.FieldTypeData},
	}, extra...)
}

func outstanding(op domain.Operator) []domain.Condition {
	return []domain.Condition{{Field: domain.ColumnOutstanding, Op: op, Values: []string{"0"}}}
}

func CustomerStatementReport() domain.ReportDefinition {
	return domain.ReportDefinition{
		Name:       CustomerStatement,
		RefDocType: docSalesInvoice,
		Filters: append([]domain.FilterField{{
			FieldName: "customer",
			Label:     "Customer",
			FieldType: domain.FieldTypeLink,
			Options:   domain.EntityCustomer,
			Required:  true,
		}}, dateRange(true)...),
		Columns: invoiceColumns(
			domain.Column{FieldName: "customer", FieldType: domain.FieldTypeLink},
			domain.Column{FieldName: "customer_name", FieldType: domain.FieldTypeData},
			domain.Column{FieldName: "is_return", FieldType: domain.FieldTypeInt},
		),
		// credit notes carry a negative outstanding amount
		Constraints: outstanding(domain.OpNotEqual),
	}
}

func PayableReport() domain.ReportDefinition {
	return domain.ReportDefinition{
		Name:       Payable,
		RefDocType: docPurchaseInvoice,
		Filters: append([]domain.FilterField{{
			FieldName: "supplier",
			Label:     "Supplier",
			FieldType: domain.FieldTypeLink,
			Options:   domain.EntitySupplier,
			Width:     150,
		}}, dateRange(false)...),
		Columns: invoiceColumns(
			domain.Column{FieldName: "supplier", FieldType: domain.FieldTypeLink},
			domain.Column{FieldName: "supplier_name", FieldType: domain.FieldTypeData},
		),
		Constraints: outstanding(domain.OpGT),
	}
}

func ReceivableReport() domain.ReportDefinition {
	return domain.ReportDefinition{
		Name:       Receivable,
		RefDocType: docSalesInvoice,
		Filters: append([]domain.FilterField{{
			FieldName: "customer",
			Label:     "Customer",
			FieldType: domain.FieldTypeLink,
			Options:   domain.EntityCustomer,
			Width:     150,
		}}, dateRange(false)...),
		Columns: invoiceColumns(),
	}
}

// Builtin returns the registry of the accounting reports shipped with the
// module. Each call builds a fresh registry.
func Builtin() *Registry {
	b := NewBuilder()
	b.Register(CustomerStatementReport())
	b.Register(PayableReport())
	b.Register(ReceivableReport())
	return b.Build()
}
