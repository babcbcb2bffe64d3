// Package i18n looks up translated UI strings from the embedded YAML catalogs.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFiles embed.FS

// Supported languages; the first one is the fallback.
var Supported = []language.Tag{language.English, language.Japanese}

// Bundle holds the catalogs of all supported languages.
type Bundle struct {
	catalogs map[language.Tag]map[string]string
	tags     []language.Tag
	matcher  language.Matcher
	fallback language.Tag
}

// Load parses the embedded catalogs. The default language must be supported
// and is used when negotiation finds nothing better.
func Load(defaultLanguage string) (*Bundle, error) {
	fallback, err := language.Parse(defaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("invalid default language %q: %w", defaultLanguage, err)
	}

	tags := []language.Tag{fallback}
	found := false
	for _, tag := range Supported {
		if tag == fallback {
			found = true
			continue
		}
		tags = append(tags, tag)
	}
	if !found {
		return nil, fmt.Errorf("default language %q is not supported", defaultLanguage)
	}

	b := &Bundle{
		catalogs: make(map[language.Tag]map[string]string, len(tags)),
		tags:     tags,
		matcher:  language.NewMatcher(tags),
		fallback: fallback,
	}

	for _, tag := range tags {
		catalog, err := loadCatalog(tag)
		if err != nil {
			return nil, err
		}
		b.catalogs[tag] = catalog
	}

	return b, nil
}

func loadCatalog(tag language.Tag) (map[string]string, error) {
	name := path.Join("locales", tag.String()+".yaml")
	content, err := localeFiles.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", name, err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(content, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", name, err)
	}

	catalog := make(map[string]string)
	flatten("", tree, catalog)
	return catalog, nil
}

// flatten turns nested maps into dotted keys: {a: {b: c}} -> "a.b": "c".
func flatten(prefix string, node map[string]any, out map[string]string) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flatten(full, v, out)
		case string:
			out[full] = v
		default:
			out[full] = fmt.Sprint(v)
		}
	}
}

// Negotiate picks the best supported language. An explicit preference (the
// lang cookie or query parameter) wins over the Accept-Language header.
func (b *Bundle) Negotiate(preferred, acceptLanguage string) *Translator {
	var tags []language.Tag
	if preferred != "" {
		if tag, err := language.Parse(preferred); err == nil {
			tags = append(tags, tag)
		}
	}
	if accepted, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
		tags = append(tags, accepted...)
	}

	tag := b.fallback
	if len(tags) > 0 {
		_, index, confidence := b.matcher.Match(tags...)
		if confidence != language.No {
			tag = b.tags[index]
		}
	}

	return b.Translator(tag)
}

// Translator returns a translator for a supported language.
func (b *Bundle) Translator(tag language.Tag) *Translator {
	messages, ok := b.catalogs[tag]
	if !ok {
		tag = b.fallback
		messages = b.catalogs[tag]
	}
	return &Translator{
		lang:     tag,
		messages: messages,
		fallback: b.catalogs[b.fallback],
	}
}

// Translator resolves keys for one language, falling back to the default language.
type Translator struct {
	lang     language.Tag
	messages map[string]string
	fallback map[string]string
}

// Lang returns the BCP 47 tag of the translator's language.
func (t *Translator) Lang() string {
	return t.lang.String()
}

// T translates a "namespace.key" and interpolates {{name}} placeholders from
// key/value pairs. A "count" value other than 1 selects the "_plural" variant
// when one exists. Unknown keys are returned as is.
func (t *Translator) T(key string, kv ...any) string {
	vars := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			continue
		}
		vars[name] = fmt.Sprint(kv[i+1])
	}

	lookup := key
	if count, ok := vars["count"]; ok && count != "1" {
		if _, found := t.find(key + "_plural"); found {
			lookup = key + "_plural"
		}
	}

	message, found := t.find(lookup)
	if !found {
		return key
	}
	return interpolate(message, vars)
}

// Has reports whether the key exists in the translator's language or the fallback.
func (t *Translator) Has(key string) bool {
	_, ok := t.find(key)
	return ok
}

func (t *Translator) find(key string) (string, bool) {
	if m, ok := t.messages[key]; ok {
		return m, true
	}
	m, ok := t.fallback[key]
	return m, ok
}

func interpolate(message string, vars map[string]string) string {
	if len(vars) == 0 || !strings.Contains(message, "{{") {
		return message
	}
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{{"+name+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(message)
}

// Weapon returns the name of a main weapon.
func (t *Translator) Weapon(weaponSplID int) string {
	return t.T("weapons.MAIN_" + strconv.Itoa(weaponSplID))
}

// Stage returns the name of a stage.
func (t *Translator) Stage(stageID int) string {
	return t.T("game-misc.STAGE_" + strconv.Itoa(stageID))
}

// ModeLong returns the full name of a mode.
func (t *Translator) ModeLong(mode string) string {
	return t.T("game-misc.MODE_LONG_" + mode)
}
