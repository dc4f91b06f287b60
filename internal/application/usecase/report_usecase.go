package usecase

import (
	"time"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// PriceListGenerator contrato del generador de la lista de precios en PDF.
// Lo implementa infrastructure/pdf.
type PriceListGenerator interface {
	GeneratePriceList(storeName string, generatedAt time.Time, products []*entity.Product) ([]byte, error)
}

// Techo de filas del reporte; el catálogo de la tienda está muy por debajo.
const priceListMaxRows = 1000

// ReportUseCase reportes del panel (hoy: lista de precios en PDF).
type ReportUseCase struct {
	products  repository.ProductRepository
	generator PriceListGenerator
	storeName string
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(products repository.ProductRepository, generator PriceListGenerator, storeName string) *ReportUseCase {
	return &ReportUseCase{products: products, generator: generator, storeName: storeName}
}

// PriceListPDF genera la lista de precios de todo el catálogo.
func (uc *ReportUseCase) PriceListPDF() ([]byte, error) {
	products, err := uc.products.List(priceListMaxRows, 0)
	if err != nil {
		return nil, err
	}
	return uc.generator.GeneratePriceList(uc.storeName, time.Now(), products)
}
