package fieldmap_test

import (
	"bytes"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflectkit/introspector/diagnostic"
	"github.com/reflectkit/introspector/fieldmap"
	"github.com/reflectkit/introspector/logging"
	"github.com/reflectkit/introspector/options"
)

type Address struct {
	Street string
	City   string
}

type Customer struct {
	Name    string
	secret  string
	Address Address
	Tags    []string
	Created time.Time
	Home    *url.URL
}

type Line struct {
	SKU string
	Qty int
}

type Status int

type Order struct {
	ID       int
	Status   Status
	Customer *Customer
	Lines    []Line
	Matrix   [][]int
	Meta     map[string]int
	Notes    any
	_        int
}

type Base struct {
	Version int
}

type Document struct {
	Base
	Title string
}

type Node struct {
	Value int
	Next  *Node
}

func sampleOrder() Order {
	home, _ := url.Parse("https://example.com/ada")

	return Order{
		ID:     7,
		Status: Status(2),
		Customer: &Customer{
			Name:    "ada",
			secret:  "s3cr3t",
			Address: Address{Street: "1 Main St", City: "London"},
			Tags:    []string{"vip"},
			Created: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			Home:    home,
		},
		Lines:  []Line{{SKU: "a-1", Qty: 2}, {SKU: "b-2", Qty: 1}},
		Matrix: [][]int{{1, 2}, {3}},
		Meta:   map[string]int{"k": 1},
	}
}

func mustMap(t *testing.T, v any) *fieldmap.FieldMap {
	t.Helper()
	fm, ok := v.(*fieldmap.FieldMap)
	require.Truef(t, ok, "expected *FieldMap, got %T", v)
	return fm
}

func TestRead_DeclarationOrder(t *testing.T) {
	fm, diags, err := fieldmap.Read(sampleOrder())
	require.NoError(t, err)
	assert.True(t, diags.IsEmpty())

	assert.Equal(t, []string{"ID", "Status", "Customer", "Lines", "Matrix", "Meta", "Notes"}, fm.Keys())
}

func TestRead_ScalarsKeepTheirType(t *testing.T) {
	fm, _, err := fieldmap.Read(sampleOrder())
	require.NoError(t, err)

	id, _ := fm.Get("ID")
	assert.Equal(t, 7, id)

	status, _ := fm.Get("Status")
	assert.Equal(t, Status(2), status)
}

func TestRead_NestedComposites(t *testing.T) {
	fm, _, err := fieldmap.Read(sampleOrder())
	require.NoError(t, err)

	raw, _ := fm.Get("Customer")
	customer := mustMap(t, raw)
	assert.Equal(t, []string{"Name", "secret", "Address", "Tags", "Created", "Home"}, customer.Keys())

	raw, _ = customer.Get("Address")
	address := mustMap(t, raw)
	city, _ := address.Get("City")
	assert.Equal(t, "London", city)
}

func TestRead_UnexportedFields(t *testing.T) {
	fm, _, err := fieldmap.Read(sampleOrder())
	require.NoError(t, err)

	raw, _ := fm.Get("Customer")
	secret, ok := mustMap(t, raw).Get("secret")
	require.True(t, ok)
	assert.Equal(t, "s3cr3t", secret)
}

func TestRead_UnexportedDisabledIsOmitted(t *testing.T) {
	var logs bytes.Buffer
	r, err := fieldmap.NewReader(
		fieldmap.WithCategories(options.CategoryAll&^options.CategoryUnexported),
		fieldmap.WithLogger(logging.NewZerolog(&logs, zerolog.WarnLevel)),
	)
	require.NoError(t, err)

	fm, diags, err := r.Read(sampleOrder())
	require.NoError(t, err)

	raw, _ := fm.Get("Customer")
	assert.False(t, mustMap(t, raw).Has("secret"))

	assert.Equal(t, []string{"Order.Customer.secret"}, diags.FieldPaths(diagnostic.CodeFieldUnreadable))
	warnings := diags.ByCode(diagnostic.CodeFieldUnreadable)
	require.Len(t, warnings, 1)
	assert.ErrorIs(t, warnings[0], fieldmap.ErrInaccessible)
	assert.Contains(t, logs.String(), "field omitted")
}

func TestRead_BuiltinsStayOpaque(t *testing.T) {
	order := sampleOrder()

	fm, _, err := fieldmap.Read(order)
	require.NoError(t, err)

	raw, _ := fm.Get("Customer")
	customer := mustMap(t, raw)

	created, _ := customer.Get("Created")
	assert.Equal(t, order.Customer.Created, created)

	home, _ := customer.Get("Home")
	assert.Same(t, order.Customer.Home, home)

	meta, _ := fm.Get("Meta")
	assert.Equal(t, map[string]int{"k": 1}, meta)
}

func TestRead_Arrays(t *testing.T) {
	fm, _, err := fieldmap.Read(sampleOrder())
	require.NoError(t, err)

	raw, _ := fm.Get("Lines")
	lines, ok := raw.([]any)
	require.True(t, ok)
	require.Len(t, lines, 2)
	sku, _ := mustMap(t, lines[1]).Get("SKU")
	assert.Equal(t, "b-2", sku)

	matrix, _ := fm.Get("Matrix")
	assert.Equal(t, []any{[]any{1, 2}, []any{3}}, matrix)
}

func TestRead_NilValues(t *testing.T) {
	fm, _, err := fieldmap.Read(Order{})
	require.NoError(t, err)

	for _, name := range []string{"Customer", "Lines", "Matrix", "Meta", "Notes"} {
		v, ok := fm.Get(name)
		assert.True(t, ok, name)
		assert.Nil(t, v, name)
	}
}

func TestRead_InterfaceHoldingStruct(t *testing.T) {
	fm, _, err := fieldmap.Read(Order{Notes: Address{City: "Paris"}})
	require.NoError(t, err)

	raw, _ := fm.Get("Notes")
	city, _ := mustMap(t, raw).Get("City")
	assert.Equal(t, "Paris", city)
}

func TestRead_RootErrors(t *testing.T) {
	_, _, err := fieldmap.Read(nil)
	assert.ErrorIs(t, err, fieldmap.ErrNilValue)

	_, _, err = fieldmap.Read((*Order)(nil))
	assert.ErrorIs(t, err, fieldmap.ErrNilValue)

	_, _, err = fieldmap.Read(42)
	assert.ErrorIs(t, err, fieldmap.ErrNotStruct)

	_, _, err = fieldmap.Read([]Order{})
	assert.ErrorIs(t, err, fieldmap.ErrNotStruct)
}

func TestRead_PointerRoot(t *testing.T) {
	order := sampleOrder()

	fm, _, err := fieldmap.Read(&order)
	require.NoError(t, err)
	assert.Equal(t, 7, fm.ToMap()["ID"])
}

func TestRead_Cycle(t *testing.T) {
	a := &Node{Value: 1}
	b := &Node{Value: 2, Next: a}
	a.Next = b

	_, diags, err := fieldmap.Read(a)
	assert.ErrorIs(t, err, fieldmap.ErrCycle)
	assert.True(t, diags.HasErrors())
	assert.Equal(t, []string{"Node.Next.Next"}, diags.FieldPaths(diagnostic.CodeCycle))
	assert.ErrorIs(t, diags.Error(), fieldmap.ErrCycle)

	self := &Node{Value: 3}
	self.Next = self

	_, _, err = fieldmap.Read(*self)
	assert.ErrorIs(t, err, fieldmap.ErrCycle)
}

func TestRead_SharedReferenceIsNotCycle(t *testing.T) {
	shared := &Customer{Name: "ada"}

	type pair struct {
		Left, Right *Customer
	}

	fm, _, err := fieldmap.Read(pair{Left: shared, Right: shared})
	require.NoError(t, err)

	left, _ := fm.Get("Left")
	right, _ := fm.Get("Right")
	assert.Equal(t, mustMap(t, left).ToMap(), mustMap(t, right).ToMap())
}

func TestRead_MaxDepth(t *testing.T) {
	chain := &Node{Value: 1, Next: &Node{Value: 2, Next: &Node{Value: 3}}}

	r, err := fieldmap.NewReader(fieldmap.WithMaxDepth(2))
	require.NoError(t, err)

	_, diags, err := r.Read(chain)
	assert.ErrorIs(t, err, fieldmap.ErrMaxDepth)
	assert.Equal(t, []string{"Node.Next.Next"}, diags.FieldPaths(diagnostic.CodeMaxDepth))

	r, err = fieldmap.NewReader(fieldmap.WithMaxDepth(3))
	require.NoError(t, err)

	_, _, err = r.Read(chain)
	assert.NoError(t, err)

	_, err = fieldmap.NewReader(fieldmap.WithMaxDepth(0))
	assert.Error(t, err)
}

func TestRead_SelfContainingSequenceHitsMaxDepth(t *testing.T) {
	loop := []any{nil}
	loop[0] = loop

	_, _, err := fieldmap.Read(Order{Notes: loop})
	assert.ErrorIs(t, err, fieldmap.ErrMaxDepth)
}

func TestRead_DisabledCategoriesPassThrough(t *testing.T) {
	r, err := fieldmap.NewReader(fieldmap.WithCategories(options.CategoryNone))
	require.NoError(t, err)

	order := sampleOrder()
	fm, diags, err := r.Read(order)
	require.NoError(t, err)

	customer, _ := fm.Get("Customer")
	assert.Same(t, order.Customer, customer)

	lines, _ := fm.Get("Lines")
	assert.Equal(t, order.Lines, lines)

	assert.True(t, diags.IsEmpty())
}

func TestRead_EmbeddedFields(t *testing.T) {
	doc := Document{Base: Base{Version: 3}, Title: "notes"}

	fm, _, err := fieldmap.Read(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Base", "Title"}, fm.Keys())

	r, err := fieldmap.NewReader(fieldmap.WithCategories(options.CategoryAll &^ options.CategoryEmbedded))
	require.NoError(t, err)

	fm, diags, err := r.Read(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Title"}, fm.Keys())
	assert.Equal(t, []string{"Document.Base"}, diags.FieldPaths(diagnostic.CodeFieldSkipped))
	assert.False(t, diags.HasErrors())
}

func TestRead_ConcurrentReaders(t *testing.T) {
	r, err := fieldmap.NewReader(fieldmap.WithPlanCacheSize(1))
	require.NoError(t, err)

	errs := make(chan error, 8)
	for i := 0; i < cap(errs); i++ {
		go func() {
			_, _, err := r.Read(sampleOrder())
			errs <- err
		}()
	}

	for i := 0; i < cap(errs); i++ {
		assert.NoError(t, <-errs)
	}
}

func TestReadErrorsAreDistinct(t *testing.T) {
	all := []error{
		fieldmap.ErrNilValue, fieldmap.ErrNotStruct, fieldmap.ErrInaccessible,
		fieldmap.ErrCycle, fieldmap.ErrMaxDepth, fieldmap.ErrNoSuchField, fieldmap.ErrTypeMismatch,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v is %v", a, b)
			}
		}
	}
}
