package sqlstore

import (
	"context"

	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
)

// resetOrder lists tables children first so no delete trips a foreign key.
var resetOrder = []string{
	"supplier_payments",
	"purchase_items",
	"purchases",
	"payments",
	"sale_items",
	"sales",
	"expenses",
	"products",
	"customers",
	"suppliers",
}

type resetRepository struct {
	baseRepository
}

var _ portsrepo.ResetRepository = (*resetRepository)(nil)

// DeleteAll empties every table. Run it inside WithinTx so a failure leaves all data in place.
func (r *resetRepository) DeleteAll(ctx context.Context) error {
	for _, table := range resetOrder {
		if _, err := r.exec(ctx, `DELETE FROM `+table); err != nil {
			return translateError(err, table, "delete from "+table)
		}
	}
	return nil
}
