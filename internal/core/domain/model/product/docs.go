// Package product implements the Product aggregate: a vendor's listing with
// price and available stock. Checkout reserves stock from a product and
// creates the order within one transaction, so stock can never go negative
// under concurrent purchases.
package product
