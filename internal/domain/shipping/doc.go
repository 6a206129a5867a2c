// Package shipping provides domain models for the fulfillment bounded context.
//
// The context owns a single aggregate, Shipment, which tracks a parcel from
// creation to delivery. Marking a shipment delivered records a
// ShipmentDeliveredEvent on the aggregate; publishing that event is the only
// way the shipping context communicates with other contexts.
package shipping
