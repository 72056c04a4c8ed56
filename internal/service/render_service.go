package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/Blockmail/blockmail/internal/domain"
	"github.com/Blockmail/blockmail/pkg/htmlscan"
	"github.com/Blockmail/blockmail/pkg/logger"
	"github.com/Blockmail/blockmail/pkg/selector"
)

// RenderService populates pre-authored HTML templates with semantic block
// data. It is synchronous and CPU-bound; the template repository is its one
// external dependency.
type RenderService struct {
	repo         domain.TemplateRepository
	logger       logger.Logger
	minifyOutput bool
}

func NewRenderService(repo domain.TemplateRepository, log logger.Logger, minifyOutput bool) *RenderService {
	return &RenderService{
		repo:         repo,
		logger:       log,
		minifyOutput: minifyOutput,
	}
}

// RenderBlockToHTML renders one block into a themed HTML fragment. A
// missing template is the only error; every other failure mode degrades to
// less substituted content.
func (s *RenderService) RenderBlockToHTML(block domain.SemanticBlock, settings domain.GlobalEmailSettings) (string, error) {
	templateVariant, mappingVariant := resolveVariants(block)
	log := s.logger.WithFields(map[string]interface{}{
		"block_id": block.ID,
		"kind":     string(block.Kind),
		"variant":  templateVariant,
	})

	buffer, err := s.repo.LoadTemplate(block.Kind, templateVariant)
	if err != nil {
		log.Error(fmt.Sprintf("template load failed: %v", err))
		return "", err
	}

	mappings, ok := MappingsFor(block.Kind, mappingVariant)
	if !ok {
		log.Debug("no mapping table, returning template verbatim")
		return buffer, nil
	}

	data, err := block.DataJSON()
	if err != nil {
		log.Error(err.Error())
		return "", err
	}

	for _, mapping := range mappings {
		if mapping.Repeat {
			buffer = s.applyRepeatingMapping(buffer, mapping, data, log)
		} else {
			buffer = s.applySingleMapping(buffer, mapping, data, log)
		}
	}

	return applyTheme(buffer, settings), nil
}

// RenderBlocksToHTML renders a block list into a complete document. Blocks
// that fail to render are dropped with a log; survivors keep block order.
func (s *RenderService) RenderBlocksToHTML(blocks []domain.SemanticBlock, settings domain.GlobalEmailSettings, previewText string) string {
	log := s.logger.WithField("render_id", uuid.New().String())

	fragments := make([]string, 0, len(blocks))
	for i, block := range blocks {
		fragment, err := s.RenderBlockToHTML(block, settings)
		if err != nil {
			log.Warn(fmt.Sprintf("dropping block %d (%s): %v", i, block.Kind, err))
			continue
		}
		fragments = append(fragments, fragment)
	}

	doc := assembleDocument(fragments, settings, previewText)
	if s.minifyOutput {
		minified, err := minifyDocument(doc)
		if err != nil {
			log.Warn(fmt.Sprintf("minification failed, returning unminified output: %v", err))
			return doc
		}
		doc = minified
	}
	return doc
}

// applySingleMapping updates the first element matching the selector and
// splices the rewritten element back at its first index in the buffer.
func (s *RenderService) applySingleMapping(buffer string, mapping domain.ElementMapping, data []byte, log logger.Logger) string {
	sel := selector.Parse(mapping.Selector)
	matches := htmlscan.FindElements(buffer, sel, log)
	if len(matches) == 0 {
		log.Warn(fmt.Sprintf("selector %q matched no elements", mapping.Selector))
		return buffer
	}

	match := matches[0]
	updated := match.HTML
	for _, am := range mapping.Attributes {
		value, ok := resolveBlockValue(am.Value, data)
		if !ok {
			continue
		}
		updated = htmlscan.UpdateAttribute(updated, am.Attribute, value)
	}
	if mapping.Content != nil {
		if value, ok := resolveBlockValue(*mapping.Content, data); ok {
			updated = htmlscan.UpdateContent(updated, match.Tag, value)
		}
	}
	if updated == match.HTML {
		return buffer
	}

	idx := strings.Index(buffer, match.HTML)
	if idx < 0 {
		return buffer
	}
	return buffer[:idx] + updated + buffer[idx+len(match.HTML):]
}

// applyRepeatingMapping projects the array at ArrayPath onto the template
// instances of the selector. Every populated element is cloned from the
// first found instance; the existing instances are replaced in place,
// last-to-first, searching backward bounded by the next instance's start so
// identical substrings cannot be confused and unprocessed offsets stay
// valid. Surplus data items are dropped; the engine never clones new rows.
func (s *RenderService) applyRepeatingMapping(buffer string, mapping domain.ElementMapping, data []byte, log logger.Logger) string {
	items := gjson.GetBytes(data, mapping.ArrayPath)
	if !items.Exists() || !items.IsArray() {
		log.Debug(fmt.Sprintf("array path %q resolved to nothing, skipping %q", mapping.ArrayPath, mapping.Selector))
		return buffer
	}
	itemList := items.Array()

	sel := selector.Parse(mapping.Selector)
	matches := htmlscan.FindElements(buffer, sel, log)
	if len(matches) == 0 {
		log.Warn(fmt.Sprintf("selector %q matched no elements", mapping.Selector))
		return buffer
	}
	if len(itemList) > len(matches) {
		log.Warn(fmt.Sprintf("dropping %d surplus items for %q: template ships %d slots",
			len(itemList)-len(matches), mapping.Selector, len(matches)))
	}

	n := len(itemList)
	if len(matches) < n {
		n = len(matches)
	}

	clone := matches[0]
	populated := make([]string, n)
	for i := 0; i < n; i++ {
		populated[i] = populateItem(clone.HTML, clone.Tag, mapping.Item, itemList[i], i)
	}

	for i := n - 1; i >= 0; i-- {
		bound := len(buffer)
		if i+1 < len(matches) && matches[i+1].Start < bound {
			bound = matches[i+1].Start
		}
		idx := strings.LastIndex(buffer[:bound], matches[i].HTML)
		if idx < 0 {
			log.Warn(fmt.Sprintf("could not relocate instance %d of %q, skipping", i, mapping.Selector))
			continue
		}
		buffer = buffer[:idx] + populated[i] + buffer[idx+len(matches[i].HTML):]
	}
	return buffer
}

func populateItem(clone, tag string, item *domain.ItemMapping, data gjson.Result, index int) string {
	if item == nil {
		return clone
	}
	out := clone
	for _, am := range item.Attributes {
		value, ok := resolveItemValue(am.Value, data, index)
		if !ok {
			continue
		}
		out = htmlscan.UpdateAttribute(out, am.Attribute, value)
	}
	if item.Content != nil {
		if value, ok := resolveItemValue(*item.Content, data, index); ok {
			out = htmlscan.UpdateContent(out, tag, value)
		}
	}
	return out
}

// resolveBlockValue resolves a ValueRef against the block payload. A path
// that resolves to nothing reports !ok, which skips the one update it
// drives.
func resolveBlockValue(ref domain.ValueRef, data []byte) (string, bool) {
	if ref.IsLiteral() {
		return *ref.Literal, true
	}
	result := gjson.GetBytes(data, ref.Path)
	if !result.Exists() {
		return "", false
	}
	return result.String(), true
}

// resolveItemValue resolves a ValueRef against one array item. The
// __INDEX__ sentinel renders index+1 for numbered-list ordinals.
func resolveItemValue(ref domain.ValueRef, item gjson.Result, index int) (string, bool) {
	if ref.IsLiteral() {
		return *ref.Literal, true
	}
	if ref.Path == domain.IndexPath {
		return strconv.Itoa(index + 1), true
	}
	result := item.Get(ref.Path)
	if !result.Exists() {
		return "", false
	}
	return result.String(), true
}
