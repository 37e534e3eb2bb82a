// Package resconfig parses the dash-separated resource qualifier string
// (the "config_str" half of a ResourcePathDescriptor, spec.md §3) into a
// structured Configuration: locale, density, screen size, orientation,
// night mode, platform version, and a handful of less common axes.
//
// Android qualifiers are positional in family but not globally ordered,
// so parsing walks the dash-separated segments left to right and
// classifies each one independently; an unrecognized segment is a parse
// failure, matching the strict qualifier validation real resource trees
// rely on to catch typos early.
package resconfig

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Orientation values.
type Orientation string

const (
	OrientationUnset      Orientation = ""
	OrientationPort       Orientation = "port"
	OrientationLand       Orientation = "land"
	OrientationSquare     Orientation = "square"
)

// NightMode values.
type NightMode string

const (
	NightModeUnset    NightMode = ""
	NightModeNight    NightMode = "night"
	NightModeNotNight NightMode = "notnight"
)

// UIMode values (subset relevant to qualifier parsing).
type UIMode string

const (
	UIModeUnset       UIMode = ""
	UIModeCar         UIMode = "car"
	UIModeDesk        UIMode = "desk"
	UIModeTelevision  UIMode = "television"
	UIModeAppliance   UIMode = "appliance"
	UIModeWatch       UIMode = "watch"
	UIModeVRHeadset   UIMode = "vrheadset"
)

// Configuration is the structured form of a resource qualifier string.
// Zero values mean "axis unset", matching a default/no-qualifier entry.
type Configuration struct {
	// Raw is the exact config_str this Configuration was parsed from, kept
	// for diagnostics and for building stable archive entry names.
	Raw string

	MCC, MNC int // 0 means unset

	// Language/Region, e.g. "en"/"US". Region is stored without the "r"
	// or "+" prefix used on disk.
	Language string
	Region   string

	ScreenSize string // "small", "normal", "large", "xlarge"
	Orientation Orientation
	UIMode      UIMode
	NightMode   NightMode

	Density string // e.g. "hdpi", "xxxhdpi", "nodpi", "anydpi", or "NNNdpi"

	Touchscreen string // "notouch", "finger", "stylus"
	Keyboard    string // "nokeys", "qwerty", "12key"
	KeysHidden  string // "keysexposed", "keyshidden", "keyssoft"
	Nav         string // "nonav", "dpad", "trackball", "wheel"
	NavHidden   string // "navexposed", "navhidden"

	ScreenWidthDp  int // wNNNdp, 0 if unset
	ScreenHeightDp int // hNNNdp, 0 if unset
	SmallestWidthDp int // swNNNdp, 0 if unset

	Version int // vNN (minimum API level), 0 if unset
}

// IsDefault reports whether no qualifier axis was set: the config_str was
// empty, the "default" configuration values and pseudo-locale entries key
// off of.
func (c *Configuration) IsDefault() bool {
	return c != nil && *c == Configuration{}
}

var (
	densityRe    = regexp.MustCompile(`^\d+dpi$`)
	versionRe    = regexp.MustCompile(`^v(\d+)$`)
	mccRe        = regexp.MustCompile(`^mcc(\d{3})$`)
	mncRe        = regexp.MustCompile(`^mnc(\d{1,3})$`)
	widthDpRe    = regexp.MustCompile(`^w(\d+)dp$`)
	heightDpRe   = regexp.MustCompile(`^h(\d+)dp$`)
	smallestWRe  = regexp.MustCompile(`^sw(\d+)dp$`)
	languageRe   = regexp.MustCompile(`^[a-z]{2,3}$`)
	regionRe     = regexp.MustCompile(`^r([A-Z]{2}|[0-9]{3})$`)
	bcp47Re      = regexp.MustCompile(`^b\+[A-Za-z0-9+]+$`)
)

var standardDensities = map[string]bool{
	"ldpi": true, "mdpi": true, "tvdpi": true, "hdpi": true,
	"xhdpi": true, "xxhdpi": true, "xxxhdpi": true,
	"nodpi": true, "anydpi": true,
}

var screenSizes = map[string]bool{"small": true, "normal": true, "large": true, "xlarge": true}
var touchscreens = map[string]bool{"notouch": true, "finger": true, "stylus": true}
var keyboards = map[string]bool{"nokeys": true, "qwerty": true, "12key": true}
var keysHidden = map[string]bool{"keysexposed": true, "keyshidden": true, "keyssoft": true}
var navs = map[string]bool{"nonav": true, "dpad": true, "trackball": true, "wheel": true}
var navHidden = map[string]bool{"navexposed": true, "navhidden": true}
var uiModes = map[string]UIMode{
	"car": UIModeCar, "desk": UIModeDesk, "television": UIModeTelevision,
	"appliance": UIModeAppliance, "watch": UIModeWatch, "vrheadset": UIModeVRHeadset,
}

// Parse parses a dash-separated qualifier string into a Configuration. An
// empty string parses to the zero Configuration (the default config). Any
// segment that matches no known qualifier axis is a parse failure, per
// spec.md §4.1 step 2 ("InvalidConfiguration(config_str)").
func Parse(configStr string) (*Configuration, error) {
	cfg := &Configuration{Raw: configStr}
	if configStr == "" {
		return cfg, nil
	}

	segments := strings.Split(configStr, "-")
	i := 0
	for i < len(segments) {
		seg := segments[i]
		switch {
		case bcp47Re.MatchString(seg):
			lang, region := parseBCP47(seg)
			cfg.Language, cfg.Region = lang, region
		case mccRe.MatchString(seg):
			n, _ := strconv.Atoi(mccRe.FindStringSubmatch(seg)[1])
			cfg.MCC = n
		case mncRe.MatchString(seg):
			n, _ := strconv.Atoi(mncRe.FindStringSubmatch(seg)[1])
			cfg.MNC = n
		case languageRe.MatchString(seg) && cfg.Language == "":
			cfg.Language = seg
			// A language segment may be immediately followed by a region
			// segment of the form "rXX".
			if i+1 < len(segments) && regionRe.MatchString(segments[i+1]) {
				cfg.Region = strings.TrimPrefix(segments[i+1], "r")
				i++
			}
		case screenSizes[seg]:
			cfg.ScreenSize = seg
		case seg == string(OrientationPort), seg == string(OrientationLand), seg == string(OrientationSquare):
			cfg.Orientation = Orientation(seg)
		case seg == string(NightModeNight), seg == string(NightModeNotNight):
			cfg.NightMode = NightMode(seg)
		case func() bool { _, ok := uiModes[seg]; return ok }():
			cfg.UIMode = uiModes[seg]
		case standardDensities[seg] || densityRe.MatchString(seg):
			cfg.Density = seg
		case touchscreens[seg]:
			cfg.Touchscreen = seg
		case keyboards[seg]:
			cfg.Keyboard = seg
		case keysHidden[seg]:
			cfg.KeysHidden = seg
		case navs[seg]:
			cfg.Nav = seg
		case navHidden[seg]:
			cfg.NavHidden = seg
		case widthDpRe.MatchString(seg):
			n, _ := strconv.Atoi(widthDpRe.FindStringSubmatch(seg)[1])
			cfg.ScreenWidthDp = n
		case heightDpRe.MatchString(seg):
			n, _ := strconv.Atoi(heightDpRe.FindStringSubmatch(seg)[1])
			cfg.ScreenHeightDp = n
		case smallestWRe.MatchString(seg):
			n, _ := strconv.Atoi(smallestWRe.FindStringSubmatch(seg)[1])
			cfg.SmallestWidthDp = n
		case versionRe.MatchString(seg):
			n, _ := strconv.Atoi(versionRe.FindStringSubmatch(seg)[1])
			cfg.Version = n
		default:
			return nil, fmt.Errorf("unrecognized resource qualifier %q in %q", seg, configStr)
		}
		i++
	}
	return cfg, nil
}

func parseBCP47(seg string) (lang, region string) {
	parts := strings.Split(strings.TrimPrefix(seg, "b+"), "+")
	if len(parts) > 0 {
		lang = strings.ToLower(parts[0])
	}
	if len(parts) > 1 {
		region = strings.ToUpper(parts[1])
	}
	return lang, region
}

// Locale returns the BCP-47-ish "lang" or "lang-REGION" string for this
// configuration, or "" if no language qualifier is set.
func (c *Configuration) Locale() string {
	if c.Language == "" {
		return ""
	}
	if c.Region == "" {
		return c.Language
	}
	return c.Language + "-" + c.Region
}

// ForLocale returns a Configuration identical to c but with Language and
// Region replaced, used to synthesize pseudo-locale variants from a
// default-configuration entry (spec.md §4.3 step 4).
func (c *Configuration) ForLocale(lang, region string) *Configuration {
	clone := *c
	clone.Language = lang
	clone.Region = region
	if region != "" {
		clone.Raw = fmt.Sprintf("b+%s+%s", lang, region)
	} else {
		clone.Raw = lang
	}
	return &clone
}

// String renders the Configuration back to its on-disk dash-qualifier
// form; used when building archive entry names for non-default configs.
func (c *Configuration) String() string {
	return c.Raw
}
