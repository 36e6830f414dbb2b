package domain

// ConceptFormatter derives the human readable label for a ledger row. It is a
// total pure function over the row's kind and reference fields: it never
// fails and always returns a non-empty string, falling back to a generic
// label when the optional reference fields are missing.
type ConceptFormatter interface {
	FormatConcept(txn Transaction) string
}

// FallbackConcept labels a charge that carries no usable reference at all.
const FallbackConcept = "Operación sin referencia"

// pendingPriceSuffix marks a charge whose cost is not yet known. It applies
// to any charge kind: the row contributes zero to the balance but the label
// must say so.
const pendingPriceSuffix = " (Pendiente de precio)"

// ConceptFormatterFor returns the formatter strategy for an account kind.
func ConceptFormatterFor(kind AccountKind) ConceptFormatter {
	if kind == Manufacturer {
		return ManufacturerConcepts{}
	}
	return CarrierConcepts{}
}

// formatPayment renders payment rows, shared by both account kinds.
func formatPayment(txn Transaction) string {
	concept := "Pago"
	if txn.Method != "" {
		concept += " - " + txn.Method
	}
	if txn.Notes != "" {
		concept += " - " + txn.Notes
	}
	return concept
}

// CarrierConcepts renders concepts for carrier account ledgers.
type CarrierConcepts struct{}

func (CarrierConcepts) FormatConcept(txn Transaction) string {
	if txn.Kind == Payment {
		return formatPayment(txn)
	}

	concept := FallbackConcept
	switch txn.SourceSubtype {
	case Delivery:
		concept = txn.Invoice
		if concept == "" {
			concept = "Sin factura"
		}
		if txn.CustomerName != "" {
			concept += " - " + txn.CustomerName
		}
	case SupplierPickup:
		if txn.SupplierName == "" {
			concept = "Retiro en Proveedor sin nombre"
		} else {
			concept = "Retiro en " + txn.SupplierName
		}
	case StoreMovement:
		concept = "Movimiento de Mercadería"
	}
	if txn.PricePending {
		concept += pendingPriceSuffix
	}
	return concept
}

// ManufacturerConcepts renders concepts for manufacturing account ledgers.
// Order charges combine the product, optional extras, and either the linked
// customer or a custom-order marker; a missing price appends a pending-price
// suffix rather than failing.
type ManufacturerConcepts struct{}

func (ManufacturerConcepts) FormatConcept(txn Transaction) string {
	if txn.Kind == Payment {
		return formatPayment(txn)
	}

	if txn.SourceSubtype != ManufacturingOrder || txn.ProductName == "" {
		if txn.PricePending {
			return FallbackConcept + pendingPriceSuffix
		}
		return FallbackConcept
	}

	concept := txn.ProductName
	if txn.Extras != "" {
		concept += " " + txn.Extras
	}
	if txn.CustomerName != "" {
		concept += " - " + txn.CustomerName
	} else {
		concept += " - (Pedido personalizado)"
		if txn.Notes != "" {
			concept += " " + txn.Notes
		}
	}
	if txn.PricePending {
		concept += pendingPriceSuffix
	}
	return concept
}
