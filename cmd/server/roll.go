package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/roll-api/internal/entities/vtt"
	"github.com/KirkDiggler/roll-api/internal/errors"
	"github.com/KirkDiggler/roll-api/internal/host"
	"github.com/KirkDiggler/roll-api/internal/host/htmlrender"
	"github.com/KirkDiggler/roll-api/internal/orchestrators/itemroll"
	"github.com/KirkDiggler/roll-api/internal/repositories/actors"
	"github.com/KirkDiggler/roll-api/internal/repositories/items"
	"github.com/KirkDiggler/roll-api/internal/settings"
)

var (
	rollItemFile  string
	rollActorFile string

	rollAdvantage    int32
	rollDisadvantage int32
	rollVersatile    bool
	rollConsume      bool
	rollSlotLevel    int32
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll an item once from YAML documents",
	Long:  `Roll loads an item and its owner from YAML files, performs the item's quick roll and prints the rendered card.`,
	RunE:  runRoll,
}

func init() {
	rollCmd.Flags().StringVar(&rollItemFile, "item", "", "path to the item YAML document")
	rollCmd.Flags().StringVar(&rollActorFile, "actor", "", "path to the actor YAML document")
	rollCmd.Flags().Int32Var(&rollAdvantage, "advantage", 0, "advantage count")
	rollCmd.Flags().Int32Var(&rollDisadvantage, "disadvantage", 0, "disadvantage count")
	rollCmd.Flags().BoolVar(&rollVersatile, "versatile", false, "use the versatile damage formula")
	rollCmd.Flags().BoolVar(&rollConsume, "consume", false, "consume item charges")
	rollCmd.Flags().Int32Var(&rollSlotLevel, "slot-level", 0, "cast leveled spells at this slot")
	_ = rollCmd.MarkFlagRequired("item")
	_ = rollCmd.MarkFlagRequired("actor")
}

func runRoll(cmd *cobra.Command, args []string) error {
	item, err := loadItem(rollItemFile)
	if err != nil {
		return err
	}
	actor, err := loadActor(rollActorFile)
	if err != nil {
		return err
	}

	ctx := context.Background()

	snap := settings.Defaults()
	snap.EnableSounds = false

	renderer, err := htmlrender.New(snap.CritString)
	if err != nil {
		return err
	}

	rollService, err := itemroll.NewOrchestrator(&itemroll.Config{
		ItemRepo:    newMemoryItemRepo(item),
		ActorRepo:   newMemoryActorRepo(actor),
		Roller:      dice.DefaultRoller,
		SettingsSrc: settings.NewStaticStore(snap),
		Renderer:    renderer,
		Chat:        &host.ConsoleTransport{Out: cmd.OutOrStdout()},
		Prompter:    &host.AutoPrompter{},
	})
	if err != nil {
		return err
	}

	_, err = rollService.RollItem(ctx, &itemroll.RollItemInput{
		ItemID:  item.ID,
		OwnerID: actor.ID,
		Params: itemroll.RollParams{
			Advantage:    rollAdvantage,
			Disadvantage: rollDisadvantage,
			Versatile:    rollVersatile,
			Consume:      rollConsume,
			SlotLevel:    rollSlotLevel,
			Preset:       itemroll.PresetMain,
		},
	})
	return err
}

func loadItem(path string) (*vtt.Item, error) {
	data, err := os.ReadFile(path) // #nosec G304 // user-supplied CLI path
	if err != nil {
		return nil, fmt.Errorf("failed to read item file: %w", err)
	}
	var item vtt.Item
	if err := yaml.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("failed to parse item YAML: %w", err)
	}
	if item.ID == "" {
		item.ID = "cli-item"
	}
	return &item, nil
}

func loadActor(path string) (*vtt.Actor, error) {
	data, err := os.ReadFile(path) // #nosec G304 // user-supplied CLI path
	if err != nil {
		return nil, fmt.Errorf("failed to read actor file: %w", err)
	}
	var actor vtt.Actor
	if err := yaml.Unmarshal(data, &actor); err != nil {
		return nil, fmt.Errorf("failed to parse actor YAML: %w", err)
	}
	if actor.ID == "" {
		actor.ID = "cli-actor"
	}
	return &actor, nil
}

// memoryItemRepo holds the CLI's single item in memory
type memoryItemRepo struct {
	items map[string]*vtt.Item
}

func newMemoryItemRepo(docs ...*vtt.Item) *memoryItemRepo {
	r := &memoryItemRepo{items: make(map[string]*vtt.Item)}
	for _, doc := range docs {
		r.items[doc.ID] = doc
	}
	return r
}

func (r *memoryItemRepo) Get(_ context.Context, input items.GetInput) (*items.GetOutput, error) {
	item, ok := r.items[input.ID]
	if !ok {
		return nil, errors.NotFoundf("item not found: %s", input.ID)
	}
	return &items.GetOutput{Item: item}, nil
}

func (r *memoryItemRepo) Save(_ context.Context, input items.SaveInput) (*items.SaveOutput, error) {
	r.items[input.Item.ID] = input.Item
	return &items.SaveOutput{Item: input.Item}, nil
}

func (r *memoryItemRepo) Delete(_ context.Context, input items.DeleteInput) (*items.DeleteOutput, error) {
	delete(r.items, input.ID)
	return &items.DeleteOutput{}, nil
}

func (r *memoryItemRepo) UpdateCounters(ctx context.Context, input items.UpdateCountersInput) (*items.UpdateCountersOutput, error) {
	out, err := r.Get(ctx, items.GetInput{ID: input.ItemID})
	if err != nil {
		return nil, err
	}
	item := out.Item
	if input.Uses != nil {
		item.Uses.Value = *input.Uses
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.RechargeCharged != nil {
		item.Recharge.Charged = *input.RechargeCharged
	}
	return &items.UpdateCountersOutput{Item: item}, nil
}

// memoryActorRepo holds the CLI's single actor in memory
type memoryActorRepo struct {
	actors map[string]*vtt.Actor
}

func newMemoryActorRepo(docs ...*vtt.Actor) *memoryActorRepo {
	r := &memoryActorRepo{actors: make(map[string]*vtt.Actor)}
	for _, doc := range docs {
		r.actors[doc.ID] = doc
	}
	return r
}

func (r *memoryActorRepo) Get(_ context.Context, input actors.GetInput) (*actors.GetOutput, error) {
	actor, ok := r.actors[input.ID]
	if !ok {
		return nil, errors.NotFoundf("actor not found: %s", input.ID)
	}
	return &actors.GetOutput{Actor: actor}, nil
}

func (r *memoryActorRepo) Save(_ context.Context, input actors.SaveInput) (*actors.SaveOutput, error) {
	r.actors[input.Actor.ID] = input.Actor
	return &actors.SaveOutput{Actor: input.Actor}, nil
}

func (r *memoryActorRepo) UpdateSlots(ctx context.Context, input actors.UpdateSlotsInput) (*actors.UpdateSlotsOutput, error) {
	out, err := r.Get(ctx, actors.GetInput{ID: input.ActorID})
	if err != nil {
		return nil, err
	}
	actor := out.Actor
	if actor.SpellSlots == nil {
		actor.SpellSlots = make(map[int32]int32)
	}
	actor.SpellSlots[input.Level] = input.Remaining
	return &actors.UpdateSlotsOutput{Actor: actor}, nil
}

var (
	_ items.Repository  = (*memoryItemRepo)(nil)
	_ actors.Repository = (*memoryActorRepo)(nil)
)
