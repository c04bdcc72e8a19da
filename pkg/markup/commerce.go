package markup

import "github.com/dmitrymomot/mailblocks/pkg/action"

func orderMarkup(cfg action.Config, o *action.Order) Object {
	out := newObject("Order")
	out["orderNumber"] = o.OrderNumber
	out["orderDate"] = o.OrderDate
	out["orderStatus"] = OrderStatusPrefix + string(o.OrderStatus)
	out["merchant"] = organization(o.MerchantName)
	out["customer"] = person(o.CustomerName)

	offers := make([]Object, 0, len(o.Items))
	for _, item := range o.Items {
		product := entity("Product")
		product["name"] = item.Name
		product.setIfPresent("sku", item.SKU)
		product.setIfPresent("image", item.Image)

		qty := entity("QuantitativeValue")
		qty["value"] = item.Quantity

		offer := entity("Offer")
		offer["itemOffered"] = product
		offer["price"] = price(item.Price)
		offer["priceCurrency"] = o.Currency
		offer["eligibleQuantity"] = qty
		offers = append(offers, offer)
	}
	out["acceptedOffer"] = offers

	out["subtotal"] = price(o.Subtotal)
	if o.Tax != nil {
		out["tax"] = price(*o.Tax)
	}
	if o.Shipping != nil {
		out["shippingCost"] = price(*o.Shipping)
	}
	out["price"] = price(o.Total)
	out["priceCurrency"] = o.Currency

	if o.ViewOrderURL != "" {
		out["url"] = o.ViewOrderURL
		pa := entity(string(action.TypeView))
		pa["name"] = cfg.Name
		pa["target"] = o.ViewOrderURL
		out["potentialAction"] = pa
	}
	return out
}

func invoiceMarkup(cfg action.Config, inv *action.Invoice) Object {
	out := newObject("Invoice")
	out["confirmationNumber"] = inv.InvoiceNumber
	out["invoiceDate"] = inv.InvoiceDate
	out["paymentDueDate"] = inv.DueDate
	out["paymentStatus"] = PaymentStatusPrefix + string(inv.PaymentStatus)
	out["provider"] = organization(inv.ProviderName)
	out["customer"] = person(inv.CustomerName)
	out["accountId"] = inv.AccountID

	items := make([]Object, 0, len(inv.Items))
	for _, item := range inv.Items {
		unit := entity("UnitPriceSpecification")
		unit["price"] = price(item.UnitPrice)
		unit["priceCurrency"] = inv.Currency

		qty := entity("QuantitativeValue")
		qty["value"] = item.Quantity

		offer := entity("Offer")
		offer["description"] = item.Description
		offer["price"] = price(item.Total)
		offer["priceCurrency"] = inv.Currency
		offer["priceSpecification"] = unit
		offer["eligibleQuantity"] = qty
		items = append(items, offer)
	}
	out["lineItems"] = items

	out["subtotal"] = price(inv.Subtotal)
	if inv.Tax != nil {
		out["tax"] = price(*inv.Tax)
	}

	total := entity("PriceSpecification")
	total["price"] = price(inv.Total)
	total["priceCurrency"] = inv.Currency
	out["totalPaymentDue"] = total

	if inv.MinimumPaymentDue != nil {
		minimum := entity("PriceSpecification")
		minimum["price"] = price(*inv.MinimumPaymentDue)
		minimum["priceCurrency"] = inv.Currency
		out["minimumPaymentDue"] = minimum
	}

	if inv.PaymentURL != "" {
		out["url"] = inv.PaymentURL
		pa := entity("PayAction")
		pa["name"] = cfg.Name
		pa["target"] = inv.PaymentURL
		out["potentialAction"] = pa
	}
	return out
}
