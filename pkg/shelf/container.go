package shelf

import (
	"errors"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
	"github.com/BrandonKowalski/shelf/pkg/shelf/internal"
)

// Container is a virtualized scrollable container. The Mapping decides its
// shape; everything else (scroll state, focus navigation, letter jumps,
// paging and layout memory) lives here.
//
// A Container is not safe for concurrent use. All calls are expected from
// the goroutine running the frame loop.
type Container struct {
	cfg     Config
	mapping Mapping
	logger  *slog.Logger

	store   itemStore
	letters letterTable
	pool    *layoutPool
	stats   PoolStats
	scroll  ScrollState

	eval          ConditionEvaluator
	rc            RenderContext
	layout        *Template
	focusedLayout *Template
	layoutErr     error

	itemsPerPage int // Scroll units per page
	itemsPerRow  int // Items per scroll unit; 1 except for panels

	hasFocus bool
	moving   constants.Direction
	now      time.Duration

	pageControl   PageControl
	pageSynced    bool
	lastPerPage   int
	lastRows      int
	lastPage      int
	inPageChange  bool
	pageFlipUntil time.Duration

	matchPrefix string
	matchAt     time.Duration
}

// NewList creates a one-dimensional, non-wrapping container.
func NewList(cfg Config) *Container {
	cfg.Kind = KindList
	return newContainer(cfg, listMapping{})
}

// NewPanel creates a grid container. Offsets count rows.
func NewPanel(cfg Config) *Container {
	cfg.Kind = KindPanel
	return newContainer(cfg, panelMapping{})
}

// NewWrappingList creates a circular list whose cursor stays at
// cfg.FocusPosition while the items scroll past it.
func NewWrappingList(cfg Config) *Container {
	cfg.Kind = KindWrapList
	return newContainer(cfg, wrapMapping{})
}

func newContainer(cfg Config, m Mapping) *Container {
	if len(cfg.FocusedLayouts) == 0 {
		cfg.FocusedLayouts = cfg.Layouts
	}

	c := &Container{
		cfg:          cfg,
		mapping:      m,
		logger:       internal.GetInternalLogger().With("container", cfg.ID, "kind", string(cfg.Kind)),
		scroll:       NewScrollState(cfg.ScrollTime),
		itemsPerPage: 1,
		itemsPerRow:  1,
	}
	c.pool = newLayoutPool(&c.stats)
	c.refreshLayout()
	return c
}

// ID returns the container's control id.
func (c *Container) ID() int {
	return c.cfg.ID
}

// Kind returns the container shape.
func (c *Container) Kind() Kind {
	return c.mapping.Kind()
}

// Orientation returns the scroll axis.
func (c *Container) Orientation() constants.Orientation {
	return c.cfg.Orientation
}

// Neighbor returns the control id configured for direction d.
func (c *Container) Neighbor(d constants.Direction) int {
	return c.cfg.Navigation.Neighbor(d)
}

func (c *Container) SetFocus(focused bool) {
	c.hasFocus = focused
}

func (c *Container) HasFocus() bool {
	return c.hasFocus
}

// SetViewport moves or resizes the container and recomputes its page shape.
func (c *Container) SetViewport(r Rect) {
	c.cfg.Viewport = r
	c.updateLayout()
}

// Viewport returns the rectangle the container renders into.
func (c *Container) Viewport() Rect {
	return c.cfg.Viewport
}

// SetConditionEvaluator sets the evaluator used to pick layout variants.
// Variants are re-resolved on the next render.
func (c *Container) SetConditionEvaluator(eval ConditionEvaluator) {
	c.eval = eval
	c.refreshLayout()
}

// SetScrollTime changes the scroll animation duration.
func (c *Container) SetScrollTime(d time.Duration) {
	c.cfg.ScrollTime = d
	c.scroll.SetDuration(d)
}

// AttachPageControl connects a page control. The current range and
// position are pushed on the next synchronization.
func (c *Container) AttachPageControl(pc PageControl) {
	c.pageControl = pc
	c.pageSynced = false
	c.syncPageControl()
}

// Offset returns the scroll offset in units (rows for panels).
func (c *Container) Offset() int {
	return c.scroll.Offset
}

// Cursor returns the focused slot within the page.
func (c *Container) Cursor() int {
	return c.scroll.Cursor
}

// ItemsPerPage returns the number of scroll units visible at once.
func (c *Container) ItemsPerPage() int {
	return c.itemsPerPage
}

// ItemsPerRow returns the number of items per scroll unit.
func (c *Container) ItemsPerRow() int {
	return c.itemsPerRow
}

// Len returns the number of bound items, filler copies excluded.
func (c *Container) Len() int {
	return c.store.logicalLen()
}

// Items returns the bound items, static ones first.
func (c *Container) Items() []Item {
	return c.store.items()
}

// ScrollPosition returns the interpolated scroll position in pixels.
func (c *Container) ScrollPosition() float64 {
	return c.scroll.Position()
}

// IsScrolling reports whether a scroll animation is running.
func (c *Container) IsScrolling() bool {
	return c.scroll.Scrolling()
}

// Moving returns the direction of the scroll animation in flight, or
// DirectionNone.
func (c *Container) Moving() constants.Direction {
	if !c.scroll.Scrolling() {
		return constants.DirectionNone
	}
	return c.moving
}

// HasMore reports whether items are hidden past the viewport edge in
// direction d. A wrapping list has more in both directions once its items
// overflow the page.
func (c *Container) HasMore(d constants.Direction) bool {
	rows := c.mapping.Rows(c)
	switch d {
	case c.forward():
		if c.mapping.Wraps() {
			return rows > c.itemsPerPage
		}
		return c.scroll.Offset+c.itemsPerPage < rows
	case c.forward().Opposite():
		if c.mapping.Wraps() {
			return rows > c.itemsPerPage
		}
		return c.scroll.Offset > 0
	default:
		return false
	}
}

// Stats returns the layout pool counters.
func (c *Container) Stats() *PoolStats {
	return &c.stats
}

// LayoutError returns the last layout resolution problem, or nil.
func (c *Container) LayoutError() error {
	return c.layoutErr
}

// Tick advances the scroll animation to now. Render calls it; hosts that
// skip frames may call it directly.
func (c *Container) Tick(now time.Duration) {
	c.now = now
	c.scroll.Tick(now)
}

func (c *Container) measure(t *Template) float64 {
	if t == nil {
		return 0
	}
	if c.rc != nil {
		return c.rc.Measure(t, c.cfg.Orientation)
	}
	return t.Size(c.cfg.Orientation)
}

func (c *Container) contentRect() Rect {
	v := c.cfg.Viewport
	x, y, w, h := c.cfg.Padding.Inset(v.X, v.Y, v.Width, v.Height)
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// refreshLayout re-resolves both layout sets and rebuilds the page shape
// when the active templates changed.
func (c *Container) refreshLayout() {
	layout, err := resolveTemplate(c.cfg.Layouts, c.eval, c.measure)
	focused, ferr := resolveTemplate(c.cfg.FocusedLayouts, c.eval, c.measure)
	if focused == nil {
		focused = layout
	}

	if err = errors.Join(err, ferr); err != nil {
		cfgErr := NewConfigError("resolve_layout", err)
		if c.layoutErr == nil || c.layoutErr.Error() != cfgErr.Error() {
			c.logger.Error("Falling back to the first layout template", "error", err)
		}
		c.layoutErr = cfgErr
	} else {
		c.layoutErr = nil
	}

	if layout == c.layout && focused == c.focusedLayout && c.layout != nil {
		return
	}

	c.freeAll()
	c.layout = layout
	c.focusedLayout = focused
	c.updateLayout()
}

// updateLayout derives the page shape from the viewport and the active
// templates, then revalidates the scroll state against it.
func (c *Container) updateLayout() {
	if c.layout == nil {
		c.itemsPerPage, c.itemsPerRow = 1, 1
		c.scroll.SetMetrics(1, 1)
		c.mapping.ValidateOffset(c)
		c.syncPageControl()
		return
	}

	o := c.cfg.Orientation
	content := c.contentRect()
	m := Metrics{
		Main:          content.Height,
		Cross:         content.Width,
		Extent:        c.measure(c.layout),
		CrossExtent:   c.layout.CrossSize(o),
		FocusedExtent: c.measure(c.focusedLayout),
	}
	if o == constants.Horizontal {
		m.Main, m.Cross = content.Width, content.Height
	}

	perRow, selected := c.itemsPerRow, c.SelectedIndex()

	c.mapping.CalculateLayout(c, m)
	c.itemsPerPage = max(c.itemsPerPage, 1)
	c.itemsPerRow = max(c.itemsPerRow, 1)
	c.scroll.SetMetrics(m.Extent, c.itemsPerPage)
	c.mapping.ValidateOffset(c)

	// The cursor counts cells, so a new row width would move focus to
	// another item.
	if c.itemsPerRow != perRow && selected >= 0 && c.store.logicalLen() > 0 {
		c.mapping.SelectItem(c, min(selected, c.store.logicalLen()-1))
		c.scroll.Snap()
	}
	c.syncPageControl()
}

// scrollTo makes offset the new scroll target. Inside the page-flip window
// the move snaps instead of animating.
func (c *Container) scrollTo(offset int) {
	switch {
	case offset > c.scroll.Offset:
		c.moving = c.forward()
	case offset < c.scroll.Offset:
		c.moving = c.forward().Opposite()
	}

	c.scroll.ScrollToOffset(offset)
	if c.now < c.pageFlipUntil {
		c.scroll.Snap()
	}
}

// forward is the screen direction of increasing offsets.
func (c *Container) forward() constants.Direction {
	if c.cfg.Orientation == constants.Horizontal {
		return constants.DirectionRight
	}
	return constants.DirectionDown
}

// setCursor clamps cursor into the page and to the last item.
func (c *Container) setCursor(cursor int) {
	limit := c.itemsPerPage*c.itemsPerRow - 1
	if !c.mapping.Wraps() {
		limit = min(limit, c.store.len()-1-c.scroll.Offset*c.itemsPerRow)
	}
	c.scroll.Cursor = clamp(cursor, 0, limit)
}

// canWrap reports whether a move in direction d may wrap around: the
// neighbour in d is the container itself, or there is neither a neighbour
// nor an action for d.
func (c *Container) canWrap(d constants.Direction) bool {
	nav := c.cfg.Navigation
	neighbor := nav.Neighbor(d)
	if neighbor != 0 {
		return neighbor == c.cfg.ID
	}
	return len(nav.Actions[d.String()]) == 0
}

// OnDirection dispatches a directional input. It returns false when the
// move is not handled and focus should go to the neighbour in d.
func (c *Container) OnDirection(d constants.Direction) bool {
	switch d {
	case constants.DirectionUp:
		return c.OnUp()
	case constants.DirectionDown:
		return c.OnDown()
	case constants.DirectionLeft:
		return c.OnLeft()
	case constants.DirectionRight:
		return c.OnRight()
	default:
		return false
	}
}

func (c *Container) OnUp() bool {
	if c.cfg.Orientation == constants.Vertical {
		return c.moveAlong(constants.DirectionUp, c.mapping.MoveUp)
	}
	return c.moveAcross(constants.DirectionUp, c.mapping.MoveLeft, (*LayoutInstance).MoveLeft)
}

func (c *Container) OnDown() bool {
	if c.cfg.Orientation == constants.Vertical {
		return c.moveAlong(constants.DirectionDown, c.mapping.MoveDown)
	}
	return c.moveAcross(constants.DirectionDown, c.mapping.MoveRight, (*LayoutInstance).MoveRight)
}

func (c *Container) OnLeft() bool {
	if c.cfg.Orientation == constants.Horizontal {
		return c.moveAlong(constants.DirectionLeft, c.mapping.MoveUp)
	}
	return c.moveAcross(constants.DirectionLeft, c.mapping.MoveLeft, (*LayoutInstance).MoveLeft)
}

func (c *Container) OnRight() bool {
	if c.cfg.Orientation == constants.Horizontal {
		return c.moveAlong(constants.DirectionRight, c.mapping.MoveDown)
	}
	return c.moveAcross(constants.DirectionRight, c.mapping.MoveRight, (*LayoutInstance).MoveRight)
}

func (c *Container) moveAlong(d constants.Direction, move func(*Container, bool) bool) bool {
	if c.store.len() == 0 {
		return false
	}
	return move(c, c.canWrap(d))
}

// moveAcross tries the mapping's cross-axis move first and then the
// focused item's sub-focus.
func (c *Container) moveAcross(d constants.Direction, move func(*Container, bool) bool, sub func(*LayoutInstance) bool) bool {
	if c.store.len() == 0 {
		return false
	}
	if move(c, c.canWrap(d)) {
		return true
	}
	if inst := c.FocusedLayout(); inst != nil {
		return sub(inst)
	}
	return false
}

// FocusedLayout returns the layout instance of the cursor item, realizing
// it if needed. Nil for an empty container.
func (c *Container) FocusedLayout() *LayoutInstance {
	if c.store.len() == 0 || c.focusedLayout == nil {
		return nil
	}
	idx := c.mapping.CorrectOffset(c, c.scroll.Offset, c.scroll.Cursor)
	if c.store.at(idx) == nil {
		return nil
	}
	return c.realize(idx, true).Layout
}

// SelectItem focuses the item at index, clamped to the bound items. Only
// the cursor moves when the item is already visible.
func (c *Container) SelectItem(index int) bool {
	n := c.store.logicalLen()
	if n == 0 {
		return false
	}
	c.mapping.SelectItem(c, clamp(index, 0, n-1))
	return true
}

// SelectedIndex returns the logical index of the focused item, or -1 when
// the container is empty.
func (c *Container) SelectedIndex() int {
	if c.store.len() == 0 {
		return -1
	}
	return c.mapping.SelectedIndex(c)
}

// SelectedItem returns the focused item, or nil.
func (c *Container) SelectedItem() Item {
	e := c.store.at(c.SelectedIndex())
	if e == nil {
		return nil
	}
	return e.item
}

// MoveOffset applies |delta| single forward (delta > 0) or backward steps,
// wrapping at the ends.
func (c *Container) MoveOffset(delta int) bool {
	if c.store.len() == 0 {
		return false
	}
	moved := false
	for ; delta > 0; delta-- {
		moved = c.mapping.MoveDown(c, true) || moved
	}
	for ; delta < 0; delta++ {
		moved = c.mapping.MoveUp(c, true) || moved
	}
	return moved
}

// PageUp scrolls back one page. At the top it moves the cursor to the first
// item instead.
func (c *Container) PageUp() bool {
	if c.store.len() == 0 {
		return false
	}
	if c.mapping.Scroll(c, -c.itemsPerPage) {
		return true
	}
	c.mapping.SelectItem(c, 0)
	return true
}

// PageDown scrolls forward one page. At the bottom it moves the cursor to
// the last item instead.
func (c *Container) PageDown() bool {
	if c.store.len() == 0 {
		return false
	}
	if c.mapping.Scroll(c, c.itemsPerPage) {
		return true
	}
	c.mapping.SelectItem(c, c.store.logicalLen()-1)
	return true
}

// OnNextLetter jumps to the first item whose leading letter differs from
// the run containing the current item.
func (c *Container) OnNextLetter() bool {
	off, ok := c.letters.next(c.SelectedIndex())
	if !ok || c.store.len() == 0 {
		return false
	}
	c.mapping.SelectItem(c, off.Index)
	return true
}

// OnPrevLetter jumps to the start of the previous letter run. The scan
// stops at the first run.
func (c *Container) OnPrevLetter() bool {
	off, ok := c.letters.prev(c.SelectedIndex())
	if !ok || c.store.len() == 0 {
		return false
	}
	c.mapping.SelectItem(c, off.Index)
	return true
}

// OnJumpLetter is type-ahead search. Letters typed within
// constants.LetterMatchTimeout of each other accumulate into a prefix; the
// search starts after the current item and wraps. When the accumulated
// prefix matches nothing the letter alone is tried.
func (c *Container) OnJumpLetter(r rune) bool {
	n := c.store.logicalLen()
	if n == 0 {
		return false
	}

	if c.now-c.matchAt > constants.LetterMatchTimeout {
		c.matchPrefix = ""
	}
	c.matchAt = c.now
	c.matchPrefix += string(r)

	start := c.SelectedIndex()
	if len([]rune(c.matchPrefix)) > 1 {
		// A growing prefix may still match the current item.
		start--
	}
	if idx, ok := c.findPrefix(c.matchPrefix, start); ok {
		c.mapping.SelectItem(c, idx)
		return true
	}

	c.matchPrefix = string(r)
	if idx, ok := c.findPrefix(c.matchPrefix, c.SelectedIndex()); ok {
		c.mapping.SelectItem(c, idx)
		return true
	}
	return false
}

// findPrefix searches the items after start, wrapping, for a sort label
// starting with prefix.
func (c *Container) findPrefix(prefix string, start int) (int, bool) {
	n := c.store.logicalLen()
	for i := 1; i <= n; i++ {
		idx := ((start+i)%n + n) % n
		if hasPrefixFold(c.store.at(idx).item.SortLabel(), prefix) {
			return idx, true
		}
	}
	return 0, false
}

// Reset clears the dynamic items and the focus anchor. Static items stay.
func (c *Container) Reset() {
	c.store.dynamic = nil
	c.rebind()
	c.scroll.Offset, c.scroll.Cursor = 0, 0
	c.scroll.Snap()
	c.updateLayout()
}

// SetStaticItems replaces the items owned by the container. They are kept
// ahead of the dynamic items and survive Reset.
func (c *Container) SetStaticItems(items []Item) {
	c.store.static = append([]Item(nil), items...)
	c.rebind()
	c.updateLayout()
}

// SetItems replaces the dynamic items.
func (c *Container) SetItems(items []Item) {
	c.store.dynamic = append([]Item(nil), items...)
	c.rebind()
	c.updateLayout()
}

// AddItem appends one dynamic item.
func (c *Container) AddItem(item Item) {
	for _, e := range c.store.unpad() {
		c.releaseEntry(&e)
	}
	c.store.append(item)
	c.letters = buildLetterTable(c.store.items())
	c.updateLayout()
}

func (c *Container) rebind() {
	c.freeAll()
	c.store.unpad()
	c.store.rebuild()
	c.letters = buildLetterTable(c.store.items())
	c.matchPrefix = ""
	c.logger.Debug("Rebound items",
		"static", len(c.store.static),
		"dynamic", len(c.store.dynamic),
		"letters", len(c.letters))
}

// syncPageControl pushes range and position to the page control when they
// changed since the last push.
func (c *Container) syncPageControl() {
	if c.pageControl == nil || c.inPageChange {
		return
	}

	rows := c.mapping.Rows(c)
	perPage := c.itemsPerPage
	if !c.pageSynced || perPage != c.lastPerPage || rows != c.lastRows {
		c.pageControl.SetRange(perPage, rows)
		c.lastPerPage, c.lastRows = perPage, rows
	}

	page := c.currentPage(rows)
	if !c.pageSynced || page != c.lastPage {
		c.pageControl.SetPosition(page)
		c.lastPage = page
	}
	c.pageSynced = true
}

func (c *Container) currentPage(rows int) int {
	if rows <= 0 {
		return 0
	}
	offset := c.scroll.Offset
	if c.mapping.Wraps() {
		offset = wrapIndex(offset, 0, rows)
	}
	pages := (rows + c.itemsPerPage - 1) / c.itemsPerPage
	if offset+c.itemsPerPage >= rows {
		return pages - 1
	}
	return offset / c.itemsPerPage
}

// OnPageChange handles a page selected on the page control. The container
// jumps without animation and suppresses scroll animations for
// constants.PageFlipWindow. It does not notify the page control back.
func (c *Container) OnPageChange(page int) bool {
	if c.store.len() == 0 || c.inPageChange {
		return false
	}
	c.inPageChange = true
	defer func() { c.inPageChange = false }()

	c.pageFlipUntil = c.now + constants.PageFlipWindow

	rows := c.mapping.Rows(c)
	offset := max(page, 0) * c.itemsPerPage
	if !c.mapping.Wraps() {
		offset = clamp(offset, 0, rows-c.itemsPerPage)
	}
	c.scrollTo(offset)
	c.scroll.Snap()
	c.mapping.ValidateOffset(c)
	return true
}
