package pricing

// Plan identifies a subscription tier.
type Plan string

const (
	PlanBasic      Plan = "basic"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

// SupportTier identifies the support add-on level.
type SupportTier string

const (
	SupportBasic     SupportTier = "basic"
	SupportPriority  SupportTier = "priority"
	SupportDedicated SupportTier = "dedicated"
)

// PlanOption holds base price and per-extra-user rate for a plan.
type PlanOption struct {
	Name        string  `json:"name"`
	BasePrice   float64 `json:"base_price"`
	PerUserRate float64 `json:"per_user_rate"`
	Popular     bool    `json:"popular,omitempty"`
}

// Rates fixed across all plans.
const (
	FreeUserAllowance = 5
	StorageRatePerGB  = 2
	IntegrationRate   = 15
)

var planTable = map[Plan]PlanOption{
	PlanBasic:      {Name: "Basic", BasePrice: 29, PerUserRate: 5},
	PlanPro:        {Name: "Pro", BasePrice: 79, PerUserRate: 10, Popular: true},
	PlanEnterprise: {Name: "Enterprise", BasePrice: 199, PerUserRate: 15},
}

var supportTable = map[SupportTier]float64{
	SupportBasic:     0,
	SupportPriority:  25,
	SupportDedicated: 100,
}

// Configuration is the calculator input.
type Configuration struct {
	Plan         Plan        `json:"plan"`
	Users        int         `json:"users"`
	StorageGB    int         `json:"storage_gb"`
	Integrations int         `json:"integrations"`
	Support      SupportTier `json:"support"`
}

// Breakdown is the itemized quote.
type Breakdown struct {
	BasePrice       float64 `json:"base_price"`
	UserCost        float64 `json:"user_cost"`
	StorageCost     float64 `json:"storage_cost"`
	IntegrationCost float64 `json:"integration_cost"`
	SupportCost     float64 `json:"support_cost"`
	Total           float64 `json:"total"`
}

// Plans returns the plan table for display, keyed by plan id.
func Plans() map[Plan]PlanOption {
	out := make(map[Plan]PlanOption, len(planTable))
	for k, v := range planTable {
		out[k] = v
	}
	return out
}

// ComputeBreakdown derives the itemized quote from a configuration.
// Pure and total: unknown plan or support tier falls back to basic,
// negative counts clamp to zero. Never errors on UI input.
func ComputeBreakdown(cfg Configuration) Breakdown {
	plan, ok := planTable[cfg.Plan]
	if !ok {
		plan = planTable[PlanBasic]
	}
	supportCost, ok := supportTable[cfg.Support]
	if !ok {
		supportCost = supportTable[SupportBasic]
	}

	users := cfg.Users
	if users < 0 {
		users = 0
	}
	storage := cfg.StorageGB
	if storage < 0 {
		storage = 0
	}
	integrations := cfg.Integrations
	if integrations < 0 {
		integrations = 0
	}

	extraUsers := users - FreeUserAllowance
	if extraUsers < 0 {
		extraUsers = 0
	}

	b := Breakdown{
		BasePrice:       plan.BasePrice,
		UserCost:        float64(extraUsers) * plan.PerUserRate,
		StorageCost:     float64(storage) * StorageRatePerGB,
		IntegrationCost: float64(integrations) * IntegrationRate,
		SupportCost:     supportCost,
	}
	b.Total = b.BasePrice + b.UserCost + b.StorageCost + b.IntegrationCost + b.SupportCost
	return b
}
