package cooker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/projectdb"
	"github.com/LegacyCodeHQ/soundcook/stage"
	"golang.org/x/sync/errgroup"
)

// parallelMap applies fn to every item with at most workers calls running.
// Successful results keep the order of items; failures are joined.
func parallelMap[In, Out any](ctx context.Context, workers int, items []In, fn func(In) (Out, error)) ([]Out, error) {
	results := make([]Out, len(items))
	errs := make([]error, len(items))

	g := new(errgroup.Group)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			results[i], errs[i] = fn(item)
			return nil
		})
	}
	_ = g.Wait()

	ok := results[:0]
	for i := range results {
		if errs[i] == nil {
			ok = append(ok, results[i])
		}
	}
	return ok, errors.Join(errs...)
}

// ResolveEvents resolves events concurrently. The events that resolved are
// returned together with the joined failures of the others.
func (c *Cooker) ResolveEvents(ctx context.Context, infos []EventInfo) ([]cooked.LocalizedEvent, error) {
	return parallelMap(ctx, c.workers, infos, c.GetEventCookedData)
}

// Summary counts what CookAll resolved.
type Summary struct {
	Events    int
	AuxBuses  int
	Sharesets int
	Failed    int
}

// Selection restricts CookAll to some events. Aux buses and sharesets are
// skipped when Events is set.
type Selection struct {
	Events []EventInfo
}

// CookAll resolves the init bank and every selected asset, and stages their
// files into sandbox. It keeps going after failures and returns them joined.
func (c *Cooker) CookAll(ctx context.Context, sandbox *stage.Sandbox, selection Selection) (Summary, error) {
	var summary Summary

	initBank, err := c.GetInitBankCookedData(AssetInfo{})
	if err != nil {
		return summary, err
	}
	errs := []error{c.CookInitBankToSandbox(initBank, sandbox)}

	events, auxBuses, sharesets, err := c.selection(selection)
	if err != nil {
		return summary, err
	}

	_, eventErr := parallelMap(ctx, c.workers, events, func(info EventInfo) (struct{}, error) {
		event, err := c.GetEventCookedData(info)
		if err != nil {
			return struct{}{}, err
		}
		return struct{}{}, c.CookLocalizedEventToSandbox(event, sandbox)
	})
	_, busErr := parallelMap(ctx, c.workers, auxBuses, func(info AssetInfo) (struct{}, error) {
		bus, err := c.GetAuxBusCookedData(info)
		if err != nil {
			return struct{}{}, err
		}
		return struct{}{}, c.CookLocalizedAuxBusToSandbox(bus, sandbox)
	})
	_, sharesetErr := parallelMap(ctx, c.workers, sharesets, func(info AssetInfo) (struct{}, error) {
		shareset, err := c.GetSharesetCookedData(info)
		if err != nil {
			return struct{}{}, err
		}
		return struct{}{}, c.CookLocalizedSharesetToSandbox(shareset, sandbox)
	})

	summary.Events = len(events) - countErrors(eventErr)
	summary.AuxBuses = len(auxBuses) - countErrors(busErr)
	summary.Sharesets = len(sharesets) - countErrors(sharesetErr)
	summary.Failed = countErrors(eventErr) + countErrors(busErr) + countErrors(sharesetErr)

	errs = append(errs, eventErr, busErr, sharesetErr)
	if err := errors.Join(errs...); err != nil {
		return summary, err
	}
	c.logger.Info("Cooked project",
		slog.Int("events", summary.Events),
		slog.Int("aux_buses", summary.AuxBuses),
		slog.Int("sharesets", summary.Sharesets))
	return summary, nil
}

func (c *Cooker) selection(selection Selection) ([]EventInfo, []AssetInfo, []AssetInfo, error) {
	if len(selection.Events) > 0 {
		return selection.Events, nil, nil, nil
	}
	lock, pd, err := c.readLock()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer lock.Unlock()

	var events []EventInfo
	for _, q := range pd.EventQueries() {
		events = append(events, EventInfo{AssetInfo: assetInfo(q)})
	}
	return events, assetInfos(pd.AuxBusQueries()), assetInfos(pd.SharesetQueries()), nil
}

func assetInfo(q projectdb.Query) AssetInfo {
	return AssetInfo{GUID: q.GUID, ShortID: q.ShortID, Name: q.Name}
}

func assetInfos(queries []projectdb.Query) []AssetInfo {
	infos := make([]AssetInfo, 0, len(queries))
	for _, q := range queries {
		infos = append(infos, assetInfo(q))
	}
	return infos
}

// countErrors counts the failures joined in err.
func countErrors(err error) int {
	if err == nil {
		return 0
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return len(joined.Unwrap())
	}
	return 1
}
