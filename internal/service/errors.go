package service

import "errors"

// Sentinel errors of the domain layer. Handlers map these to HTTP
// statuses with errors.Is; messages surface verbatim in the error
// envelope.
var (
	ErrInvalidQuantity      = errors.New("la cantidad es invalida")
	ErrEmptyCart            = errors.New("el carrito esta vacio")
	ErrProductNotFound      = errors.New("producto no encontrado")
	ErrCategoryNotFound     = errors.New("categoria no encontrada")
	ErrDuplicateCode        = errors.New("ya existe un producto con ese codigo")
	ErrDuplicateCategory    = errors.New("ya existe una categoria con ese nombre")
	ErrProductReferenced    = errors.New("el producto tiene ventas asociadas y no puede eliminarse")
	ErrInsufficientPayment  = errors.New("el pago no cubre el total de la venta")
	ErrCustomerRequired     = errors.New("se requiere un cliente para registrar el fiado")
	ErrCustomerNotFound     = errors.New("cliente no encontrado")
	ErrSupplierNotFound     = errors.New("proveedor no encontrado")
	ErrCreditNotFound       = errors.New("credito no encontrado")
	ErrDebtNotFound         = errors.New("deuda no encontrada")
	ErrSaleNotFound         = errors.New("venta no encontrada")
	ErrClosureNotFound      = errors.New("cierre no encontrado")
	ErrInvalidDateRange     = errors.New("rango de fechas invalido")
	ErrInvalidPaymentAmount = errors.New("el monto del pago debe ser mayor a cero")
)
