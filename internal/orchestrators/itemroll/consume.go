package itemroll

import (
	"context"

	"github.com/KirkDiggler/roll-api/internal/entities/vtt"
	"github.com/KirkDiggler/roll-api/internal/errors"
	"github.com/KirkDiggler/roll-api/internal/repositories/actors"
	"github.com/KirkDiggler/roll-api/internal/repositories/items"
)

// deriveChargeRequest maps the item's consumption configuration to the
// depletion modes a roll consumes
func deriveChargeRequest(item *vtt.Item) ChargeRequest {
	return ChargeRequest{
		Use:      item.HasLimitedUses(),
		Quantity: item.ConsumeQuantity,
		Resource: item.Consume.Type != "",
		Recharge: item.Recharge.Formula != "",
	}
}

// consumeCharge validates and applies the item's counter mutations for one
// request. All precondition checks for the requested modes run before any
// mutation; a failing check aborts with a FailedPrecondition error and the
// ConsumeError outcome, leaving every counter untouched. All applicable
// mutations are merged into a single repository update.
func (o *orchestrator) consumeCharge(ctx context.Context, item *vtt.Item, req ChargeRequest) (ConsumeOutcome, error) {
	if !req.Any() {
		return ConsumeSuccess, nil
	}

	// Validation, in fixed order; nothing mutates until all checks pass.
	if req.Quantity && !req.Use && item.Quantity <= 0 {
		return ConsumeError, errors.FailedPrecondition("no quantity remaining").
			WithMeta("item_id", item.ID)
	}
	if req.Use && !req.Quantity && item.Uses.Value <= 0 {
		return ConsumeError, errors.FailedPrecondition("no uses remaining").
			WithMeta("item_id", item.ID)
	}
	if req.Use && req.Quantity && item.Uses.Value <= 0 && item.Quantity <= 0 {
		return ConsumeError, errors.FailedPrecondition("no uses or quantity remaining").
			WithMeta("item_id", item.ID)
	}
	if req.Recharge && !item.Recharge.Charged {
		return ConsumeError, errors.FailedPrecondition("item is not recharged").
			WithMeta("item_id", item.ID)
	}

	// The linked-resource collaborator both checks and consumes; it runs
	// last so its side effect only happens when every other check passed.
	if req.Resource {
		if o.resourceConsumer == nil {
			return ConsumeError, errors.FailedPrecondition("no resource consumer configured").
				WithMeta("item_id", item.ID)
		}
		allowed, err := o.resourceConsumer.TryConsumeLinkedResource(ctx, item)
		if err != nil {
			return ConsumeError, errors.Wrap(err, "failed to consume linked resource")
		}
		if !allowed {
			return ConsumeError, errors.FailedPrecondition("linked resource exhausted").
				WithMeta("item_id", item.ID).
				WithMeta("resource", item.Consume.Target)
		}
	}

	outcome := ConsumeSuccess
	update := items.UpdateCountersInput{ItemID: item.ID}

	switch {
	case req.Use && req.Quantity:
		uses := item.Uses.Value - 1
		quantity := item.Quantity
		if uses < 0 {
			// Uses exhausted: open a new "pack" by spending quantity
			quantity--
			if quantity <= 0 {
				quantity = 0
				uses = 0
				if item.AutoDestroy {
					outcome = ConsumeDestroy
				}
			} else {
				uses = item.Uses.Max
			}
		}
		update.Uses = &uses
		update.Quantity = &quantity

	case req.Use:
		uses := item.Uses.Value - 1
		if uses < 0 {
			uses = 0
		}
		update.Uses = &uses

	case req.Quantity:
		quantity := item.Quantity - 1
		if item.Quantity <= 1 && item.AutoDestroy {
			outcome = ConsumeDestroy
		}
		if quantity < 0 {
			quantity = 0
		}
		update.Quantity = &quantity
	}

	if req.Recharge {
		charged := false
		update.RechargeCharged = &charged
	}

	if update.Uses != nil || update.Quantity != nil || update.RechargeCharged != nil {
		out, err := o.itemRepo.UpdateCounters(ctx, update)
		if err != nil {
			return ConsumeError, errors.Wrap(err, "failed to update item counters")
		}
		// Keep the in-memory item in sync for the rest of the request
		*item = *out.Item
	}

	return outcome, nil
}

// consumeSpellSlot spends one spell slot of the cast level from the
// owner. Availability is checked before the write; an empty slot pool
// aborts the request with no mutation.
func (r *Request) consumeSpellSlot(ctx context.Context) error {
	remaining := r.actor.SpellSlotsRemaining(r.castLevel)
	if remaining <= 0 {
		return errors.FailedPreconditionf("no level %d spell slots remaining", r.castLevel)
	}

	out, err := r.o.actorRepo.UpdateSlots(ctx, actors.UpdateSlotsInput{
		ActorID:   r.actor.ID,
		Level:     r.castLevel,
		Remaining: remaining - 1,
	})
	if err != nil {
		return errors.Wrap(err, "failed to spend spell slot")
	}
	*r.actor = *out.Actor
	return nil
}
