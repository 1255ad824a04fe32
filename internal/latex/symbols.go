package latex

// Symbols 将 LaTeX 命令名映射到 Unicode 字符
//
// 数据驱动：解析器只查表，不关心具体符号。
var Symbols = map[string]string{
	// Greek (lowercase)
	"alpha":   "α",
	"beta":    "β",
	"gamma":   "γ",
	"delta":   "δ",
	"epsilon": "ε",
	"zeta":    "ζ",
	"eta":     "η",
	"theta":   "θ",
	"iota":    "ι",
	"kappa":   "κ",
	"lambda":  "λ",
	"mu":      "μ",
	"nu":      "ν",
	"xi":      "ξ",
	"pi":      "π",
	"rho":     "ρ",
	"sigma":   "σ",
	"tau":     "τ",
	"upsilon": "υ",
	"phi":     "φ",
	"chi":     "χ",
	"psi":     "ψ",
	"omega":   "ω",

	// Greek (uppercase)
	"Gamma":  "Γ",
	"Delta":  "Δ",
	"Theta":  "Θ",
	"Lambda": "Λ",
	"Xi":     "Ξ",
	"Pi":     "Π",
	"Sigma":  "Σ",
	"Phi":    "Φ",
	"Psi":    "Ψ",
	"Omega":  "Ω",

	// Operators and relations
	"times":   "×",
	"div":     "÷",
	"cdot":    "⋅",
	"pm":      "±",
	"mp":      "∓",
	"leq":     "≤",
	"le":      "≤",
	"geq":     "≥",
	"ge":      "≥",
	"neq":     "≠",
	"ne":      "≠",
	"approx":  "≈",
	"equiv":   "≡",
	"sim":     "∼",
	"propto":  "∝",
	"infty":   "∞",
	"partial": "∂",
	"nabla":   "∇",
	"sum":     "∑",
	"prod":    "∏",
	"int":     "∫",
	"oint":    "∮",
	"perp":    "⊥",
	"parallel": "∥",
	"angle":   "∠",
	"circ":    "∘",
	"bullet":  "•",
	"star":    "⋆",
	"dagger":  "†",
	"oplus":   "⊕",
	"otimes":  "⊗",

	// Set theory and logic
	"in":        "∈",
	"notin":     "∉",
	"subset":    "⊂",
	"supset":    "⊃",
	"subseteq":  "⊆",
	"supseteq":  "⊇",
	"cup":       "∪",
	"cap":       "∩",
	"emptyset":  "∅",
	"forall":    "∀",
	"exists":    "∃",
	"neg":       "¬",
	"wedge":     "∧",
	"land":      "∧",
	"vee":       "∨",
	"lor":       "∨",
	"therefore": "∴",
	"because":   "∵",

	// Arrows
	"rightarrow":     "→",
	"to":             "→",
	"leftarrow":      "←",
	"gets":           "←",
	"leftrightarrow": "↔",
	"Rightarrow":     "⇒",
	"implies":        "⇒",
	"Leftarrow":      "⇐",
	"Leftrightarrow": "⇔",
	"iff":            "⇔",
	"mapsto":         "↦",
	"uparrow":        "↑",
	"downarrow":      "↓",

	// Dots and misc
	"ldots":  "…",
	"cdots":  "⋯",
	"dots":   "…",
	"vdots":  "⋮",
	"ddots":  "⋱",
	"hbar":   "ℏ",
	"ell":    "ℓ",
	"aleph":  "ℵ",
	"Re":     "ℜ",
	"Im":     "ℑ",
	"wp":     "℘",
	"langle": "⟨",
	"rangle": "⟩",
	"prime":  "′",
	"degree": "°",
	"quad":   " ",
	"qquad":  "  ",
	",":      " ",
	";":      " ",
}

// FunctionNames LaTeX 函数命令（\sin、\log 等），按原名输出
var FunctionNames = map[string]bool{
	"sin":    true,
	"cos":    true,
	"tan":    true,
	"cot":    true,
	"sec":    true,
	"csc":    true,
	"arcsin": true,
	"arccos": true,
	"arctan": true,
	"sinh":   true,
	"cosh":   true,
	"tanh":   true,
	"log":    true,
	"ln":     true,
	"lg":     true,
	"exp":    true,
	"lim":    true,
	"min":    true,
	"max":    true,
	"sup":    true,
	"inf":    true,
	"det":    true,
	"dim":    true,
	"ker":    true,
	"deg":    true,
	"gcd":    true,
	"mod":    true,
	"Pr":     true,
}
