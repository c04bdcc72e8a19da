package markup

import (
	"fmt"
	"strconv"

	"github.com/dmitrymomot/mailblocks/pkg/action"
)

// Context identifies the vocabulary every generated object belongs to.
const Context = "http://schema.org"

// Status URI prefixes. The literal enum token is appended verbatim, e.g.
// ReservationStatusPrefix + "Confirmed".
const (
	ReservationStatusPrefix = Context + "/Reservation"
	OrderStatusPrefix       = Context + "/Order"
	PaymentStatusPrefix     = Context + "/Payment"
)

// Object is one structured-markup JSON tree. Values are strings, numbers,
// nested Objects or []Object — the stdlib JSON encoder renders it with
// deterministic key order.
type Object map[string]any

// Generate maps one action configuration to its structured-markup object.
// Reservation and commerce variants fail with *MissingPayloadError when
// their payload is absent; partial objects are never emitted.
func Generate(cfg action.Config) (Object, error) {
	switch cfg.Type {
	case action.TypeView, action.TypeConfirm, action.TypeSave:
		return simpleAction(cfg), nil
	case action.TypeTrack:
		// The rich parcel shape wins whenever a parcel payload exists.
		if cfg.Parcel != nil {
			return parcelDelivery(cfg), nil
		}
		return simpleAction(cfg), nil
	case action.TypeUpdate, action.TypeCancel:
		return handlerAction(cfg), nil
	case action.TypeDownload:
		return downloadAction(cfg), nil
	case action.TypeRsvp:
		if cfg.Event == nil {
			return nil, newMissingPayload(cfg.Type, "event")
		}
		return rsvpEvent(cfg), nil
	case action.TypeFlightReservation:
		if cfg.Flight == nil {
			return nil, newMissingPayload(cfg.Type, "flight")
		}
		return flightReservation(cfg.Flight), nil
	case action.TypeLodgingReservation:
		if cfg.Lodging == nil {
			return nil, newMissingPayload(cfg.Type, "lodging")
		}
		return lodgingReservation(cfg.Lodging), nil
	case action.TypeTrainReservation:
		if cfg.Train == nil {
			return nil, newMissingPayload(cfg.Type, "train")
		}
		return trainReservation(cfg.Train), nil
	case action.TypeBusReservation:
		if cfg.Bus == nil {
			return nil, newMissingPayload(cfg.Type, "bus")
		}
		return busReservation(cfg.Bus), nil
	case action.TypeRentalCarReservation:
		if cfg.RentalCar == nil {
			return nil, newMissingPayload(cfg.Type, "rentalCar")
		}
		return rentalCarReservation(cfg.RentalCar), nil
	case action.TypeFoodReservation:
		if cfg.Restaurant == nil {
			return nil, newMissingPayload(cfg.Type, "restaurant")
		}
		return foodReservation(cfg.Restaurant), nil
	case action.TypeOrder:
		if cfg.Order == nil {
			return nil, newMissingPayload(cfg.Type, "order")
		}
		return orderMarkup(cfg, cfg.Order), nil
	case action.TypeInvoice:
		if cfg.Invoice == nil {
			return nil, newMissingPayload(cfg.Type, "invoice")
		}
		return invoiceMarkup(cfg, cfg.Invoice), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAction, cfg.Type)
	}
}

func newObject(typ string) Object {
	return Object{
		"@context": Context,
		"@type":    typ,
	}
}

// entity builds a nested sub-object carrying only a type tag; nested
// entities are never emitted with an @context of their own.
func entity(typ string) Object {
	return Object{"@type": typ}
}

func person(name string) Object {
	o := entity("Person")
	o["name"] = name
	return o
}

func organization(name string) Object {
	o := entity("Organization")
	o["name"] = name
	return o
}

// setIfPresent adds the key only for non-empty string values — the core
// presence-conditional rule: absent input means absent key, never null.
func (o Object) setIfPresent(key, value string) {
	if value != "" {
		o[key] = value
	}
}

// price renders a monetary amount as its decimal string form; the
// vocabulary expects price-like scalars as strings, not numbers.
func price(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func postalAddress(a *action.Address) Object {
	o := entity("PostalAddress")
	o.setIfPresent("streetAddress", a.Street)
	o.setIfPresent("addressLocality", a.City)
	o.setIfPresent("addressRegion", a.Region)
	o.setIfPresent("postalCode", a.PostalCode)
	o.setIfPresent("addressCountry", a.Country)
	return o
}

func place(p *action.Place) Object {
	o := entity("Place")
	o["name"] = p.Name
	if !p.Address.IsEmpty() {
		o["address"] = postalAddress(p.Address)
	}
	return o
}

func targetValue(t *action.Target) any {
	if t.IsList() {
		urls := t.URLs()
		out := make([]any, len(urls))
		for i, u := range urls {
			out[i] = u
		}
		return out
	}
	first, _ := t.First()
	return first
}
