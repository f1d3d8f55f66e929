package domain

// WorkflowKind discriminates the pending workflow variants.
// At most one workflow is active per sender at any time.
type WorkflowKind string

const (
	WorkflowNewItemConfirm  WorkflowKind = "new_item_confirm"
	WorkflowTypeSelect      WorkflowKind = "type_select"
	WorkflowSupplierSelect  WorkflowKind = "supplier_select"
	WorkflowMultiBatch      WorkflowKind = "multi_batch"
	WorkflowEdit            WorkflowKind = "edit"
	WorkflowAddSupplier     WorkflowKind = "add_supplier"
	WorkflowSupplierDetails WorkflowKind = "supplier_details"
	WorkflowPreferences     WorkflowKind = "preferences"
	WorkflowLowsFill        WorkflowKind = "lows_fill"
	WorkflowNeedFill        WorkflowKind = "need_fill"
)

// EditStep is the item editor sub-state
type EditStep string

const (
	EditMenu            EditStep = "menu"
	EditSupplier        EditStep = "supplier"
	EditType            EditStep = "type"
	EditTypeRawSupplier EditStep = "type_raw_supplier"
	EditRename          EditStep = "rename"
	EditDeleteConfirm   EditStep = "delete_confirm"
)

// PrefStep is the preferences sub-state
type PrefStep string

const (
	PrefMenu         PrefStep = "menu"
	PrefLanguage     PrefStep = "language"
	PrefPrepSupplier PrefStep = "prep_supplier"
)

// Add-supplier steps, in order of the questions asked
const (
	AddSupplierCompany = 1
	AddSupplierContact = 2
	AddSupplierNumber  = 3
)

// BatchEntry is one collected (item, quantity) pair
type BatchEntry struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Workflow is the pending-workflow record held per sender. It is a tagged
// union: Kind selects the variant, the other fields are meaningful only for
// the kinds that use them. Kept flat and JSON-serializable so session
// backends can persist it without knowing the variants.
type Workflow struct {
	Kind WorkflowKind `json:"kind"`

	// NewItemConfirm, TypeSelect, SupplierSelect
	Item       string `json:"item,omitempty"`
	Quantity   int    `json:"quantity,omitempty"`
	SupplierID string `json:"supplier_id,omitempty"`

	// MultiBatch, LowsFill, NeedFill
	Collected []BatchEntry `json:"collected,omitempty"`

	// LowsFill, NeedFill worklist
	FillItems []string `json:"fill_items,omitempty"`
	FillIndex int      `json:"fill_index,omitempty"`

	// Edit
	EditStep EditStep `json:"edit_step,omitempty"`

	// AddSupplier
	Step    int    `json:"step,omitempty"`
	Company string `json:"company,omitempty"`
	Contact string `json:"contact,omitempty"`

	// Preferences
	PrefStep PrefStep `json:"pref_step,omitempty"`
}
