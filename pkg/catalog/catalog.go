// Package catalog holds the built-in prompt library. Catalog prompts are
// read-only: they cannot be edited, deleted, or re-rated, and their
// identities are their positions in this list.
package catalog

import "github.com/rajatvarna/PromptDB/pkg/prompt"

// Builtin returns a fresh copy of the static catalog. Callers may hand
// the prompts to the view pipeline directly; each call returns new
// values so no caller can corrupt the catalog for another.
func Builtin() []*prompt.Prompt {
	out := make([]*prompt.Prompt, len(builtin))
	for i := range builtin {
		p := builtin[i]
		out[i] = p.Clone()
	}
	return out
}

// Starters returns draft templates offered as starting points when a
// user authors a new custom prompt.
func Starters() []prompt.Draft {
	out := make([]prompt.Draft, len(starters))
	copy(out, starters)
	for i := range out {
		out[i].Tags = append([]string(nil), starters[i].Tags...)
	}
	return out
}

// StarterByTitle finds a starter draft by its title, case-sensitively.
func StarterByTitle(title string) (prompt.Draft, bool) {
	for _, d := range Starters() {
		if d.Title == title {
			return d, true
		}
	}
	return prompt.Draft{}, false
}

var builtin = []prompt.Prompt{
	{
		ID:          prompt.StaticID(1),
		Title:       "Deep Research: Historical Analysis",
		Description: "Generates a detailed report on the history, evolution, and major players of an industry.",
		Category:    prompt.CategoryIndustryAnalysis,
		Tags:        []string{"history", "deep-research", "macro", "gemini"},
		Rating:      4.8,
		RatingCount: 124,
		Body: `ROLE
You are an economic historian and industry analyst.
Write a factual, data-based history of the [Industry Name] showing how it formed, evolved, and produced its major winners.
Use clear, analytical language focused on cause and effect.

OBJECTIVE
Create one detailed report (8 000-10 000 words) that explains:
- How the industry began and why it matters economically.
- What forces shaped it: technology, regulation, capital, competition.
- How leading firms gained and kept advantage.
- What cycles or patterns repeat across time.
- What lessons guide long-term investors.

REPORT OUTLINE
1. Formation: Initial need and early solutions. First technologies, financing models, and institutions.
2. Expansion: Breakthroughs that enabled scale. Evolution of cost, productivity, and barriers to entry.
3. Crises and Regulation: Major shocks that reset structure. Policy shifts.
4. Competition: How leading firms built edge (cost, tech, brand). Failures and structural limits.
5. Industry Players: Main actors, why they dominated, key mergers.
6. Modern Transformation: Digital shifts, new entrants.
7. Capital and Returns: Financing evolution, leverage, return patterns.
8. Key Insights: Recurrent mechanisms of success/failure.`,
	},
	{
		ID:          prompt.StaticID(2),
		Title:       "Deep Research: Growth & Future Scenarios",
		Description: "A forward-looking report explaining current drivers, structural limits, and future scenarios.",
		Category:    prompt.CategoryIndustryAnalysis,
		Tags:        []string{"growth", "future", "strategy", "gemini"},
		Rating:      4.7,
		RatingCount: 98,
		Body: `ROLE
You are an industry analyst and strategist.
Write a factual, forward-looking report on the [Industry Name] explaining current growth drivers, structural limits, and plausible future scenarios.
Use analytical, quantitative, and cause-effect reasoning.

REPORT OUTLINE
1. Current Structure: Market size, segmentation, profit pools.
2. Growth Drivers: Demand-side (demographics, adoption) and supply-side (capacity, innovation).
3. Constraints and Headwinds: Regulation, resource limits, saturation.
4. Technological Evolution: Innovations with material economic impact.
5. Competitive Landscape: New entrants, consolidation, moats.
6. Scenarios (5-10 Years): Base case, Upside (faster adoption), Downside (shocks).
7. Financial Outlook: Revenue, margin, and ROCE expectations.
8. Strategic Implications: Capabilities defining winners.`,
	},
	{
		ID:          prompt.StaticID(3),
		Title:       "Deep Research: Operations & Economics",
		Description: "Technical report on the operating logic: value chain, cost drivers, cash flows, and efficiency.",
		Category:    prompt.CategoryCompanyOps,
		Tags:        []string{"economics", "operations", "margins", "value-chain"},
		Rating:      4.9,
		RatingCount: 156,
		Body: `ROLE
You are an industry economist and operations analyst.
Write a precise, technical report explaining the complete operating logic of the [Industry Name]: its value chain, cost drivers, cash flows, and efficiency mechanics.
Use causal, quantitative reasoning throughout.

REPORT OUTLINE
1. Value Chain and Flow: From input to customer. Value added at each link.
2. Operating Models: Revenue logic, pricing mechanisms, fixed vs variable.
3. Cost Structure: Operating expenses breakdown, economies of scale.
4. Working Capital: Payment cycles (DSO, DPO), cash conversion.
5. Asset Base: Capex intensity, depreciation, operating leverage.
6. Labor and Productivity: Labor share, automation potential.
7. Technology: Core tech enabling efficiency.
8. Risks: Supply chain, single points of failure.
9. Metrics: Core KPIs (gross -> EBIT -> FCF), ROCE, utilization.`,
	},
	{
		ID:          prompt.StaticID(4),
		Title:       "Identify Industry Leaders",
		Description: "Identify the best public companies to analyze for a specific industry value chain.",
		Category:    prompt.CategoryInvestmentResearch,
		Tags:        []string{"screening", "public-companies", "discovery"},
		Rating:      4.5,
		RatingCount: 42,
		Body: `List 5-7 public companies whose annual reports best represent the [Industry Name] value chain.

For each, include:
- Name + Ticker + Country
- Role in value chain
- Why it matters (scale, specialization, region, or disclosure depth)
- Key metrics disclosed

Then add:
- A brief value chain summary (how the selected firms cover the full system).
- The selection criteria: Publicly listed, clear business explanations, covers major value chain steps, mix of leaders/niche specialists, strong KPI disclosure, 5+ years of data.`,
	},
	{
		ID:          prompt.StaticID(5),
		Title:       "NotebookLM Analyst Persona",
		Description: "System prompt to turn an AI into a customized industry analyst using uploaded sources.",
		Category:    prompt.CategoryWriting,
		Tags:        []string{"persona", "notebooklm", "style"},
		Rating:      4.6,
		RatingCount: 75,
		Body: `Act as my industry analyst.
You will receive questions about this industry, specific companies, or recent developments.
Use the uploaded sources to explain for an investor the key economic drivers, business models, capital intensity, competitive forces, and key metrics from an investor's perspective, with numbers, examples, and page citations.
When possible, present your answers in bullet points for clarity.`,
	},
	{
		ID:          prompt.StaticID(6),
		Title:       "Quarterly Results Analysis",
		Description: "Analyze new earnings results in the context of the broader industry.",
		Category:    prompt.CategoryInvestmentResearch,
		Tags:        []string{"earnings", "quarterly", "analysis"},
		Rating:      4.4,
		RatingCount: 38,
		Body:        `Here are [Company Name]'s Q3 results. Based on what you know about the company and the industry, explain what these numbers mean - especially the changes in margins, growth, and guidance.`,
	},
	{
		ID:          prompt.StaticID(7),
		Title:       "Senior Small-Cap Analyst Persona",
		Description: "Sets the AI as a senior equity analyst specializing in high-quality small-caps.",
		Category:    prompt.CategoryInvestmentResearch,
		Tags:        []string{"persona", "small-cap", "equity-research"},
		Rating:      4.8,
		RatingCount: 210,
		Body:        `You are my senior equity analyst with 40+ years of experience in the field of small-cap investing, niche in high-quality small-caps. Your goal is to help me identify and understand high-quality small-cap businesses. Base all insights on verifiable facts and logic. Provide concise, data-driven reasoning.`,
	},
	{
		ID:          prompt.StaticID(8),
		Title:       "Quantitative Small-Cap Filter",
		Description: "Filter for high-potential small-cap stocks based on specific financial criteria.",
		Category:    prompt.CategoryInvestmentResearch,
		Tags:        []string{"screening", "quantitative", "small-cap"},
		Rating:      4.7,
		RatingCount: 185,
		Body: `List 25 listed small-cap companies (< $1 B market cap) with:
- Revenue growth > 10% CAGR (5 yrs)
- ROIC > 12%
- Debt/Equity < 0.5
- Insider ownership > 8%
- Rank by stability of gross margins.

Pro Move: Ask AI to also explain why each meets criteria, pattern recognition beats data lists.`,
	},
	{
		ID:          prompt.StaticID(9),
		Title:       "Market Structure Scan",
		Description: "Identify industries with structural tailwinds and low institutional coverage.",
		Category:    prompt.CategoryIndustryAnalysis,
		Tags:        []string{"market-structure", "discovery", "niche"},
		Rating:      4.3,
		RatingCount: 25,
		Body:        `Which industries under $2 B total market size have structural tailwinds (digitalization, regulation, demographic change) and low institutional coverage?`,
	},
	{
		ID:          prompt.StaticID(10),
		Title:       "Company Autopsy: The Engine",
		Description: "Quickly understand a business model and revenue streams.",
		Category:    prompt.CategoryCompanyOps,
		Tags:        []string{"business-model", "due-diligence"},
		Rating:      4.5,
		RatingCount: 60,
		Body: `Explain [Company]'s business model in 4 sentences.
Map revenue streams, customer concentration, and pricing power.`,
	},
	{
		ID:          prompt.StaticID(11),
		Title:       "Company Autopsy: Financial DNA",
		Description: "Extract and analyze key financial trends and anomalies.",
		Category:    prompt.CategoryInvestmentResearch,
		Tags:        []string{"financials", "trends", "cash-flow"},
		Rating:      4.9,
		RatingCount: 110,
		Body: `Extract the last 5 years of revenue, EBITDA, FCF, ROIC, and debt levels.
Identify trends, anomalies, and capital allocation behavior.
Then: Compare FCF generation to net income. Any red flags in cash conversion?`,
	},
	{
		ID:          prompt.StaticID(12),
		Title:       "Moat Assessment",
		Description: "Evaluate the durability and type of a company's economic moat.",
		Category:    prompt.CategoryInvestmentResearch,
		Tags:        []string{"moat", "competitive-advantage", "strategy"},
		Rating:      4.7,
		RatingCount: 145,
		Body: `Based on filings and customer data, which type of moat does [Company] have (Cost, Network, Brand, Process, Regulatory)?
Rate durability from 1-10 with justification.
List specific signals that the moat is strengthening or weakening.`,
	},
	{
		ID:          prompt.StaticID(13),
		Title:       "Red Flag Detection",
		Description: "Identify accounting or governance risks from filings.",
		Category:    prompt.CategoryInvestmentResearch,
		Tags:        []string{"risk", "forensic", "accounting"},
		Rating:      4.8,
		RatingCount: 95,
		Body: `List any accounting or governance risks from the last 3 years of filings.
Highlight auditor changes, related-party transactions, or sudden margin shifts.
Identify anomalies between net income and cash flow.`,
	},
	{
		ID:          prompt.StaticID(14),
		Title:       "Investment Thesis Builder",
		Description: "Synthesize data into a concise 1-page investment memo.",
		Category:    prompt.CategoryWriting,
		Tags:        []string{"thesis", "summary", "memo"},
		Rating:      4.6,
		RatingCount: 72,
		Body: `Summarize [Company] in one page:
- Elevator pitch (3 sentences)
- Growth drivers
- Risks and mitigants
- Valuation range (Base, Bull, Bear)
- Why it can compound 15%+ for 5 yrs (Use only verifiable facts).`,
	},
	{
		ID:          prompt.StaticID(15),
		Title:       "Asymmetric Lens",
		Description: "Analyze probability vs payoff for a potential investment.",
		Category:    prompt.CategoryInvestmentResearch,
		Tags:        []string{"risk-reward", "probability", "mental-model"},
		Rating:      4.9,
		RatingCount: 130,
		Body: `What must go right for this to 5x in 5 years?
What must go wrong for it to fail?
Quantify each.`,
	},
	{
		ID:          prompt.StaticID(16),
		Title:       "Valuation Range (DCF)",
		Description: "Run a scenario-based DCF analysis to find fair value range.",
		Category:    prompt.CategoryValuation,
		Tags:        []string{"dcf", "valuation", "modeling"},
		Rating:      4.7,
		RatingCount: 165,
		Body: `Run a 10-year DCF with 3 scenarios:
- Base: 10% growth, 12% EBIT margin, 2% terminal
- Bull: 15% growth, 15% margin
- Bear: 5% growth, 8% margin
Show FCF, discount rate 10%, and fair-value range.

Then: Summarize what's priced in at today's valuation.`,
	},
	{
		ID:          prompt.StaticID(17),
		Title:       "Management Quality Check",
		Description: "Analyze management consistency and integrity via earnings calls.",
		Category:    prompt.CategoryInvestmentResearch,
		Tags:        []string{"management", "qualitative", "earnings-calls"},
		Rating:      4.5,
		RatingCount: 55,
		Body: `Analyze all earnings call transcripts since 2020 for [Company].
Summarize tone, use of forward-looking language, and mentions of execution discipline.
Identify patterns of over- or under-promising.
Then cross-compare: Benchmark management commentary vs. actual results - quantify delivery rate.`,
	},
	{
		ID:          prompt.StaticID(18),
		Title:       "Weekly Small-Cap Scanner",
		Description: "Automated weekly scan for high-potential small caps.",
		Category:    prompt.CategoryAutomation,
		Tags:        []string{"weekly", "scanner", "workflow"},
		Rating:      4.4,
		RatingCount: 88,
		Body: `Every Monday, scan global small-caps under $1 B with:
- 10% YoY revenue growth
- Insider buying in last 90 days
- Expanding margins.
Summarize top 5 with 5-line thesis and valuation range.`,
	},
	{
		ID:          prompt.StaticID(19),
		Title:       "Meta-Level Feedback Loop",
		Description: "Use AI to audit your own investment thinking and biases.",
		Category:    prompt.CategoryAutomation,
		Tags:        []string{"self-improvement", "psychology", "bias"},
		Rating:      4.8,
		RatingCount: 115,
		Body: `Review my last 10 investment memos.
Identify recurring biases, overly optimistic assumptions, or ignored risk signs.
Summarize lessons and build a correction checklist.`,
	},
	{
		ID:          prompt.StaticID(20),
		Title:       "M&A Pattern Recognition",
		Description: "Analyze acquisition trends in a specific industry.",
		Category:    prompt.CategoryIndustryAnalysis,
		Tags:        []string{"m&a", "strategy", "corporate-finance"},
		Rating:      4.2,
		RatingCount: 30,
		Body: `List all acquisitions in [industry] under $500 M since 2020.
Identify valuation multiples and strategic rationale.
What patterns do top acquirers target?`,
	},
}

var starters = []prompt.Draft{
	{
		Title:       "SWOT Analysis",
		Description: "A classic framework for analyzing a company's Strengths, Weaknesses, Opportunities, and Threats.",
		Category:    prompt.CategoryInvestmentResearch,
		Tags:        []string{"swot", "strategy", "analysis"},
		Body: `Conduct a detailed SWOT analysis for [Company Name].

STRENGTHS:
- What unique assets or capabilities does the company possess?
- Where do they have a competitive advantage?

WEAKNESSES:
- What areas are they underperforming in?
- What resources do they lack compared to competitors?

OPPORTUNITIES:
- What market trends could they exploit?
- Are there adjacent markets they can enter?

THREATS:
- Who are the emerging competitors?
- Are there regulatory or macro risks?

CONCLUSION:
- Weigh the strengths vs threats to determine the overall outlook.`,
	},
	{
		Title:       "Porter's Five Forces",
		Description: "Evaluate the competitive intensity and attractiveness of an industry.",
		Category:    prompt.CategoryIndustryAnalysis,
		Tags:        []string{"strategy", "industry", "competition"},
		Body: `Analyze the [Industry Name] using Porter's Five Forces framework.

1. Threat of New Entrants: How high are barriers to entry (capital, regulation, brand)?
2. Bargaining Power of Suppliers: Are suppliers concentrated? Can they dictate prices?
3. Bargaining Power of Buyers: Are customers fragmented or concentrated? Heavily price-sensitive?
4. Threat of Substitute Products: Are there alternative solutions that offer better value?
5. Competitive Rivalry: Is it a price war or value-based competition?

Summary: Is this industry structurally attractive for long-term capital?`,
	},
	{
		Title:       "Earnings Call Sentiment Analysis",
		Description: "Analyze the tone and sentiment of executive leadership during earnings calls.",
		Category:    prompt.CategoryInvestmentResearch,
		Tags:        []string{"sentiment", "earnings", "management"},
		Body: `Analyze the transcript of the latest earnings call for [Company Name].

- What was the overall sentiment (Bullish, Cautious, Bearish)?
- Extract key quotes related to future guidance.
- Did management dodge any analyst questions? If so, which ones?
- Compare the tone of the CEO vs the CFO.
- Flag any words indicating uncertainty (e.g., "headwinds", "challenging", "transition").`,
	},
	{
		Title:       "Executive Team Audit",
		Description: "Assess the background, track record, and alignment of company leadership.",
		Category:    prompt.CategoryCompanyOps,
		Tags:        []string{"management", "governance", "leadership"},
		Body: `Perform an audit on the executive team of [Company Name].

- CEO Track Record: Past successes/failures. Tenure at current company.
- Insider Ownership: Do executives hold significant stock? Have they been buying or selling recently?
- Compensation: Is pay aligned with shareholder value (ROIC, EPS) or just size (Revenue)?
- Board Composition: Are board members independent or insiders?`,
	},
	{
		Title:       "Product/Market Fit Check",
		Description: "Evaluate customer feedback and traction to assess product-market fit.",
		Category:    prompt.CategoryInvestmentResearch,
		Tags:        []string{"product", "customer", "reviews"},
		Body: `Analyze the product-market fit for [Company Name]'s core product.

- What problem does it solve for the customer?
- Summarize the top 3 positive and negative themes from recent customer reviews (G2, Capterra, Amazon, etc.).
- Is the product a "must-have" or "nice-to-have"?
- How high are the switching costs for customers?`,
	},
}
