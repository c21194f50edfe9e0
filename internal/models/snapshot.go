package models

// Snapshot is the whole document the record store reads and writes: the
// eight entity collections, always materialized together. Mutations follow
// a read-modify-write cycle over one snapshot.
type Snapshot struct {
	RazonesSociales       []RazonSocial
	Clientes              []Cliente
	Contratos             []Contrato
	OrdenesDeCambio       []OrdenDeCambio
	Facturas              []Factura
	Pagos                 []Pago
	CatalogoConceptos     []CatalogoConcepto
	ProcesosConstructivos []ProcesoConstructivo
}

// nextID assigns ids by increment-on-insert: max(existing)+1, or 1 when the
// collection is empty. Holes left by deletes are never reused below the max.
func nextID[T any](items []T, id func(T) uint) uint {
	var max uint
	for _, it := range items {
		if id(it) > max {
			max = id(it)
		}
	}
	return max + 1
}

func (s *Snapshot) NextRazonSocialID() uint {
	return nextID(s.RazonesSociales, func(r RazonSocial) uint { return r.ID })
}

func (s *Snapshot) NextClienteID() uint {
	return nextID(s.Clientes, func(c Cliente) uint { return c.ID })
}

func (s *Snapshot) NextContratoID() uint {
	return nextID(s.Contratos, func(c Contrato) uint { return c.ID })
}

func (s *Snapshot) NextOrdenDeCambioID() uint {
	return nextID(s.OrdenesDeCambio, func(o OrdenDeCambio) uint { return o.ID })
}

func (s *Snapshot) NextFacturaID() uint {
	return nextID(s.Facturas, func(f Factura) uint { return f.ID })
}

func (s *Snapshot) NextPagoID() uint {
	return nextID(s.Pagos, func(p Pago) uint { return p.ID })
}

func (s *Snapshot) NextCatalogoConceptoID() uint {
	return nextID(s.CatalogoConceptos, func(c CatalogoConcepto) uint { return c.ID })
}

func (s *Snapshot) NextProcesoConstructivoID() uint {
	return nextID(s.ProcesosConstructivos, func(p ProcesoConstructivo) uint { return p.ID })
}
