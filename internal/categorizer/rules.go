package categorizer

import "fintrack/internal/models"

// Rule maps a keyword list to a category. Rules are evaluated in order and
// the first match wins, so table order is part of the engine's contract.
type Rule struct {
	Category models.Category
	// Keywords match the lower-cased description for any amount sign.
	Keywords []string
	// IncomeOnly restricts the rule to non-negative amounts.
	IncomeOnly bool
	// NegativeKeywords additionally match when the amount is negative.
	NegativeKeywords []string
}

// builtinRules is the fixed bilingual rule table. Income rules come first and
// only fire for non-negative amounts; expense rules fire for any sign. The
// ordering must not change: "salary" beats "grocery" for income amounts, and
// a negative "red packet" falls through to Gift Given.
var builtinRules = []Rule{
	{Category: models.CategorySalary, IncomeOnly: true,
		Keywords: []string{"salary", "wages", "工资"}},
	{Category: models.CategoryGiftReceived, IncomeOnly: true,
		Keywords: []string{"red packet", "hongbao", "红包", "gift received"}},
	{Category: models.CategoryInvestment, IncomeOnly: true,
		Keywords: []string{"invest", "dividend", "interest"}},

	{Category: models.CategoryGroceries,
		Keywords: []string{"grocery", "supermarket", "market", "菜市场"}},
	{Category: models.CategoryRent,
		Keywords: []string{"rent", "房租"}},
	{Category: models.CategoryUtilities,
		Keywords: []string{"utility", "electricity", "water", "gas", "internet", "水电煤"}},
	{Category: models.CategoryTransport,
		Keywords: []string{"transport", "metro", "subway", "bus", "taxi", "didi", "交通", "地铁", "公交"}},
	{Category: models.CategoryEntertainment,
		Keywords: []string{"movie", "cinema", "concert", "game", "ktv", "娱乐"}},
	{Category: models.CategoryDiningOut,
		Keywords: []string{"restaurant", "cafe", "lunch", "dinner", "coffee", "外卖", "吃饭"}},
	{Category: models.CategoryShopping,
		Keywords: []string{"clothes", "shoes", "taobao", "jd.com", "pdd", "淘宝", "京东", "拼多多", "购物"}},
	{Category: models.CategoryHealthcare,
		Keywords: []string{"doctor", "hospital", "pharmacy", "药", "医院"}},
	{Category: models.CategoryGiftGiven,
		Keywords:         []string{"gift"},
		NegativeKeywords: []string{"red packet", "红包"}},
}

// BuiltinRules returns a copy of the fixed rule table, mainly for tests and
// for listing the active rule set.
func BuiltinRules() []Rule {
	out := make([]Rule, len(builtinRules))
	copy(out, builtinRules)
	return out
}
