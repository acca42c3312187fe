package types

// Module keys for capability resolution. Resource tabs are modules of their
// own because edit rights differ per tab.
const (
	MODULE_ANNOUNCEMENTS = "announcements"
	MODULE_CALENDAR      = "calendar"
	MODULE_TASKS         = "tasks"
	MODULE_TRAININGS     = "trainings"
	MODULE_REGULATIONS   = "regulations"
	MODULE_LINKS         = "links"
	MODULE_PRICES        = "prices"
	MODULE_PSYCHOLOGISTS = "psychologists"
	MODULE_REPORT        = "productivity_report"
)

// Permissions is the capability set a profile holds on one module,
// resolved once per session instead of checked inline per view.
type Permissions struct {
	CanView   bool `json:"can_view"`
	CanCreate bool `json:"can_create"`
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
}

var (
	viewOnly = Permissions{CanView: true}
	fullCRUD = Permissions{CanView: true, CanCreate: true, CanEdit: true, CanDelete: true}
)

// policyTable is the single source of truth for what each profile may do
// per module. Task mutation rights are intentionally broad: any assignee
// may edit a task they can see, so CanEdit holds for every profile and the
// assignment check happens at the service layer.
var policyTable = map[string]map[string]Permissions{
	PROFILE_MANAGEMENT: {
		MODULE_ANNOUNCEMENTS: fullCRUD,
		MODULE_CALENDAR:      fullCRUD,
		MODULE_TASKS:         fullCRUD,
		MODULE_TRAININGS:     fullCRUD,
		MODULE_REGULATIONS:   fullCRUD,
		MODULE_LINKS:         fullCRUD,
		MODULE_PRICES:        fullCRUD,
		MODULE_PSYCHOLOGISTS: fullCRUD,
		MODULE_REPORT:        viewOnly,
	},
	PROFILE_COLLABORATOR: {
		MODULE_ANNOUNCEMENTS: viewOnly,
		MODULE_CALENDAR:      viewOnly,
		MODULE_TASKS:         {CanView: true, CanCreate: true, CanEdit: true},
		MODULE_TRAININGS:     viewOnly,
		MODULE_REGULATIONS:   viewOnly,
		MODULE_LINKS:         viewOnly,
		MODULE_PRICES:        viewOnly,
		MODULE_PSYCHOLOGISTS: fullCRUD,
	},
	PROFILE_PSYCHOLOGIST: {
		MODULE_ANNOUNCEMENTS: viewOnly,
		MODULE_CALENDAR:      viewOnly,
		MODULE_TASKS:         {CanView: true, CanCreate: true, CanEdit: true},
		MODULE_TRAININGS:     viewOnly,
		MODULE_REGULATIONS:   viewOnly,
		MODULE_LINKS:         viewOnly,
	},
}

// ResolvePermissions looks up the capability set for a profile on a module.
// Unknown profiles or modules get an empty set, which denies everything.
func ResolvePermissions(profile, module string) Permissions {
	modules, ok := policyTable[profile]
	if !ok {
		return Permissions{}
	}
	return modules[module]
}

// ResolveAllPermissions returns the full capability map for a profile,
// keyed by module. Modules absent from the map are not visible at all.
func ResolveAllPermissions(profile string) map[string]Permissions {
	modules, ok := policyTable[profile]
	if !ok {
		return map[string]Permissions{}
	}
	resolved := make(map[string]Permissions, len(modules))
	for module, perms := range modules {
		resolved[module] = perms
	}
	return resolved
}
