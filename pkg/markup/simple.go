package markup

import "github.com/dmitrymomot/mailblocks/pkg/action"

// simpleAction emits the lightweight EmailMessage + potentialAction shape
// shared by view, confirm, save and parcel-less track actions. Unlike every
// other optional field, description always appears here and falls back to
// the empty string.
func simpleAction(cfg action.Config) Object {
	pa := entity(string(cfg.Type))
	pa["name"] = cfg.Name
	pa["description"] = cfg.Description

	switch cfg.Type {
	case action.TypeConfirm, action.TypeSave:
		if cfg.Handler != nil {
			pa["handler"] = actionHandler(cfg.Handler)
		}
	default:
		if cfg.Target != nil {
			pa["target"] = targetValue(cfg.Target)
		}
	}

	o := newObject("EmailMessage")
	o["potentialAction"] = pa
	return o
}

// handlerAction emits update/cancel markup: the same EmailMessage wrapper,
// but the endpoint rendered as a typed EntryPoint target.
func handlerAction(cfg action.Config) Object {
	pa := entity(string(cfg.Type))
	pa["name"] = cfg.Name
	pa["description"] = cfg.Description

	if cfg.Handler != nil {
		ep := entity("EntryPoint")
		ep["urlTemplate"] = cfg.Handler.URL
		ep.setIfPresent("httpMethod", cfg.Handler.Method)
		pa["target"] = ep
	}

	o := newObject("EmailMessage")
	o["potentialAction"] = pa
	return o
}

// downloadAction emits the download shape with the file described as a
// typed MediaObject.
func downloadAction(cfg action.Config) Object {
	pa := entity(string(action.TypeDownload))
	pa["name"] = cfg.Name
	pa["description"] = cfg.Description

	if cfg.URL != "" {
		pa["target"] = cfg.URL
		obj := entity("MediaObject")
		obj["contentUrl"] = cfg.URL
		obj.setIfPresent("name", cfg.Filename)
		pa["object"] = obj
	}

	o := newObject("EmailMessage")
	o["potentialAction"] = pa
	return o
}

// rsvpEvent emits the event entity with an attached RsvpAction.
func rsvpEvent(cfg action.Config) Object {
	ev := cfg.Event

	o := newObject("Event")
	o["name"] = ev.Name
	o["startDate"] = ev.StartDate
	o.setIfPresent("endDate", ev.EndDate)
	if ev.Location != nil {
		o["location"] = place(ev.Location)
	}
	if ev.Organizer != "" {
		o["organizer"] = organization(ev.Organizer)
	}

	pa := entity(string(action.TypeRsvp))
	pa["name"] = cfg.Name
	if cfg.Handler != nil {
		pa["handler"] = actionHandler(cfg.Handler)
	}
	o["potentialAction"] = pa
	return o
}

// parcelDelivery emits the rich tracking shape. It is preferred over the
// simple track shape whenever a parcel payload exists.
func parcelDelivery(cfg action.Config) Object {
	p := cfg.Parcel

	o := newObject("ParcelDelivery")
	o.setIfPresent("trackingNumber", p.TrackingNumber)
	o.setIfPresent("trackingUrl", p.TrackingURL)
	o.setIfPresent("expectedArrivalUntil", p.ExpectedArrivalUntil)
	if p.Carrier != "" {
		o["carrier"] = organization(p.Carrier)
	}
	if !p.DeliveryAddress.IsEmpty() {
		o["deliveryAddress"] = postalAddress(p.DeliveryAddress)
	}
	if p.ItemShipped != "" {
		item := entity("Product")
		item["name"] = p.ItemShipped
		o["itemShipped"] = item
	}
	if p.OrderNumber != "" || p.Merchant != "" {
		order := entity("Order")
		order.setIfPresent("orderNumber", p.OrderNumber)
		if p.Merchant != "" {
			order["merchant"] = organization(p.Merchant)
		}
		o["partOfOrder"] = order
	}

	target := p.TrackingURL
	if target == "" && cfg.Target != nil {
		target, _ = cfg.Target.First()
	}
	if target != "" {
		pa := entity(string(action.TypeTrack))
		pa["name"] = cfg.Name
		pa["target"] = target
		o["potentialAction"] = pa
	}
	return o
}

func actionHandler(h *action.Handler) Object {
	o := entity("HttpActionHandler")
	o["url"] = h.URL
	o.setIfPresent("method", h.Method)
	return o
}
