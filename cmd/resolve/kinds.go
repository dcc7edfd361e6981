package resolve

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/LegacyCodeHQ/soundcook/cmd/resolve/formatters"
	"github.com/LegacyCodeHQ/soundcook/cooker"
)

type request struct {
	info    cooker.AssetInfo
	group   uint32
	bank    uint32
	loading cooker.SwitchContainerLoading
}

type resolver func(c *cooker.Cooker, req request) (*formatters.Asset, error)

// resolvers maps each asset kind to its cooker lookup.
var resolvers = map[string]resolver{
	"event": func(c *cooker.Cooker, req request) (*formatters.Asset, error) {
		event, err := c.GetEventCookedData(cooker.EventInfo{AssetInfo: req.info, SwitchContainerLoading: req.loading})
		if err != nil {
			return nil, err
		}
		return formatters.FromEvent(event)
	},
	"auxbus": func(c *cooker.Cooker, req request) (*formatters.Asset, error) {
		bus, err := c.GetAuxBusCookedData(req.info)
		if err != nil {
			return nil, err
		}
		return formatters.FromAuxBus(bus)
	},
	"shareset": func(c *cooker.Cooker, req request) (*formatters.Asset, error) {
		shareset, err := c.GetSharesetCookedData(req.info)
		if err != nil {
			return nil, err
		}
		return formatters.FromShareset(shareset)
	},
	"soundbank": func(c *cooker.Cooker, req request) (*formatters.Asset, error) {
		bank, err := c.GetSoundBankCookedData(req.info)
		if err != nil {
			return nil, err
		}
		return formatters.FromSoundBank(bank)
	},
	"initbank": func(c *cooker.Cooker, req request) (*formatters.Asset, error) {
		bank, err := c.GetInitBankCookedData(req.info)
		if err != nil {
			return nil, err
		}
		return formatters.FromInitBank(bank)
	},
	"media": func(c *cooker.Cooker, req request) (*formatters.Asset, error) {
		info := req.info
		info.HardCodedSoundBankShortID = req.bank
		media, ok, err := c.GetMediaCookedData(info)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("media %d of sound bank %d is held in memory and needs no file", info.ShortID, req.bank)
		}
		return formatters.FromMedia(media)
	},
	"externalsource": func(c *cooker.Cooker, req request) (*formatters.Asset, error) {
		source, err := c.GetExternalSourceCookedData(req.info)
		if err != nil {
			return nil, err
		}
		return formatters.FromValue(source, source.Cookie, label(source.DebugName, "cookie", source.Cookie))
	},
	"gameparameter": func(c *cooker.Cooker, req request) (*formatters.Asset, error) {
		parameter, err := c.GetGameParameterCookedData(req.info)
		if err != nil {
			return nil, err
		}
		return formatters.FromValue(parameter, parameter.ShortID, label(parameter.DebugName, "game parameter", parameter.ShortID))
	},
	"trigger": func(c *cooker.Cooker, req request) (*formatters.Asset, error) {
		trigger, err := c.GetTriggerCookedData(req.info)
		if err != nil {
			return nil, err
		}
		return formatters.FromValue(trigger, trigger.ID, label(trigger.DebugName, "trigger", trigger.ID))
	},
	"acoustictexture": func(c *cooker.Cooker, req request) (*formatters.Asset, error) {
		texture, err := c.GetAcousticTextureCookedData(req.info)
		if err != nil {
			return nil, err
		}
		return formatters.FromValue(texture, texture.ShortID, label(texture.DebugName, "acoustic texture", texture.ShortID))
	},
	"switch": func(c *cooker.Cooker, req request) (*formatters.Asset, error) {
		value, err := c.GetSwitchCookedData(cooker.GroupValueInfo{AssetInfo: req.info, GroupShortID: req.group})
		if err != nil {
			return nil, err
		}
		return formatters.FromValue(value, value.ID, label(value.DebugName, "switch", value.ID))
	},
	"state": func(c *cooker.Cooker, req request) (*formatters.Asset, error) {
		value, err := c.GetStateCookedData(cooker.GroupValueInfo{AssetInfo: req.info, GroupShortID: req.group})
		if err != nil {
			return nil, err
		}
		return formatters.FromValue(value, value.ID, label(value.DebugName, "state", value.ID))
	},
}

func kindNames() string {
	return strings.Join(slices.Sorted(maps.Keys(resolvers)), ", ")
}

func label(debugName, kind string, id uint32) string {
	if debugName != "" {
		return debugName
	}
	return kind + " " + strconv.FormatUint(uint64(id), 10)
}
