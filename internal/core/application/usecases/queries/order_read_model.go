// Package queries contains read operations in the CQRS architecture.
// Query handlers read through GORM directly and project every order row for
// the requesting viewer, so no read path can return undisclosed contact data.
package queries

import (
	"database/sql"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/viewer"
	"marketplace/internal/core/domain/services"

	"github.com/google/uuid"
)

// orderColumns is the select list every order query shares. The full row is
// always read; reduction happens in the projection, not in SQL.
const orderColumns = `
		id,
		customer_id,
		product_id,
		product_name,
		unit_price,
		quantity,
		total_amount,
		delivery_address,
		customer_phone,
		status,
		created_at,
		rider_id`

// orderColumnsQualified prefixes every order column with a table alias, for
// queries that join orders against other tables.
func orderColumnsQualified(alias string) string {
	qualified := ""
	for i, column := range strings.Split(orderColumns, ",") {
		if i > 0 {
			qualified += ","
		}
		qualified += "\n\t\t" + alias + "." + strings.TrimSpace(column)
	}
	return qualified
}

// scanOrderRow reads one order row into a restored domain aggregate.
func scanOrderRow(rows *sql.Rows) (*order.Order, error) {
	var (
		id              uuid.UUID
		customerID      uuid.UUID
		productID       uuid.UUID
		productName     string
		unitPrice       int64
		quantity        int
		totalAmount     int64
		deliveryAddress string
		customerPhone   string
		status          int
		createdAt       time.Time
		riderID         *uuid.UUID
	)

	if err := rows.Scan(
		&id,
		&customerID,
		&productID,
		&productName,
		&unitPrice,
		&quantity,
		&totalAmount,
		&deliveryAddress,
		&customerPhone,
		&status,
		&createdAt,
		&riderID,
	); err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return nil, err
	}
	prodID, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return nil, err
	}

	var rider *kernel.UUID
	if riderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*riderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		rider = &rID
	}

	price, err := kernel.NewMoney(unitPrice)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(totalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		orderID, custID, prodID,
		productName, price, quantity, total,
		deliveryAddress, customerPhone,
		order.Status(status), createdAt, rider,
	)
}

// projectRows scans and projects every order row for the given viewer,
// closing rows before returning.
func projectRows(rows *sql.Rows, v viewer.Context) ([]order.View, error) {
	defer rows.Close()

	projector := services.NewVisibilityProjector()
	views := make([]order.View, 0)

	for rows.Next() {
		o, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}

		view, err := projector.Project(o, v)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
