// Package billing provides domain models for the billing bounded context.
//
// The context owns a single aggregate, Invoice, issued in response to
// shipment deliveries. Billing never reads the shipping store: the shipment
// id and tracking number held by an invoice are scalar copies carried in the
// ShipmentDeliveredEvent payload.
package billing
