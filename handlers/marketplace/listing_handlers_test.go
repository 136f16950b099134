package marketplace

import (
	"testing"

	"api/models"
)

func editRequest() UpdateListingRequest {
	price := 150
	return UpdateListingRequest{
		Title:       "Incident response playbook",
		Description: "Updated runbook",
		PriceLBT:    &price,
		Category:    models.CategoryResources,
	}
}

func TestListingUpdatesOmittedFieldsUnchanged(t *testing.T) {
	fields := listingUpdates(editRequest())

	for _, column := range []string{"active", "delivery_method"} {
		if _, present := fields[column]; present {
			t.Errorf("%s written by an edit that omitted it", column)
		}
	}
	if fields["price_lbt"] != 150 {
		t.Errorf("price_lbt = %v, want 150", fields["price_lbt"])
	}
}

func TestListingUpdatesCarriedFieldsWritten(t *testing.T) {
	request := editRequest()
	active := false
	delivery := "email"
	request.Active = &active
	request.DeliveryMethod = &delivery

	fields := listingUpdates(request)
	if fields["active"] != false {
		t.Errorf("active = %v, want false", fields["active"])
	}
	if fields["delivery_method"] != "email" {
		t.Errorf("delivery_method = %v, want %q", fields["delivery_method"], "email")
	}
}
