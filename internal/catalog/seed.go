package catalog

// seedMisconceptions defines the misconception taxonomy.
// 14 misconceptions across 4 topics.
var seedMisconceptions = []Misconception{
	// Fractions (5)
	{
		ID:          "frac-invert",
		Topic:       "fractions",
		Name:        "Numerator and denominator swapped",
		Description: "Writes the fraction upside down; e.g., answers 4/3 when the correct answer is 3/4",
		EvidencePatterns: []string{
			"student answer is the reciprocal of the correct answer",
			"3/4 answered as 4/3",
		},
		RemediationTemplate: "Remember: the numerator (top) counts the parts you have, the denominator (bottom) counts the parts in one whole. Check which number belongs on top before writing your answer.",
	},
	{
		ID:          "frac-add-denominators",
		Topic:       "fractions",
		Name:        "Adds denominators when adding fractions",
		Description: "Adds both numerators and denominators; e.g., 1/4 + 1/4 = 2/8",
		EvidencePatterns: []string{
			"1/4 + 1/4 = 2/8",
			"denominator in the answer equals the sum of the denominators",
		},
		RemediationTemplate: "When the denominators match, add only the numerators. The denominator names the size of the pieces, and the size of the pieces does not change.",
	},
	{
		ID:          "frac-bigger-denominator",
		Topic:       "fractions",
		Name:        "Bigger denominator means bigger fraction",
		Description: "Believes a fraction with a larger denominator is larger; e.g., thinks 1/8 > 1/4",
		EvidencePatterns: []string{
			"1/8 chosen as larger than 1/4",
			"orders fractions by denominator size",
		},
		RemediationTemplate: "A bigger denominator means the whole is cut into more, smaller pieces. Compare 1/4 and 1/8 by imagining a pizza cut into 4 slices versus 8 slices.",
	},
	{
		ID:          "frac-whole-number-ops",
		Topic:       "fractions",
		Name:        "Treats numerator and denominator as separate whole numbers",
		Description: "Operates on tops and bottoms independently as unrelated whole numbers",
		EvidencePatterns: []string{
			"2/3 * 2 = 4/6 explained as doubling both parts",
			"simplifies by subtracting the same number from top and bottom",
		},
		RemediationTemplate: "A fraction is a single number, not two. Before calculating, say the fraction out loud ('two thirds') to remember it names one quantity.",
	},
	{
		ID:          "frac-ignore-numerator",
		Topic:       "fractions",
		Name:        "Compares fractions by numerator only",
		Description: "Ranks fractions purely by numerator; e.g., thinks 3/10 > 2/3",
		EvidencePatterns: []string{
			"3/10 chosen as larger than 2/3",
		},
		RemediationTemplate: "To compare fractions, bring them to a common denominator first, or picture both on a number line between 0 and 1.",
	},

	// Decimals (3)
	{
		ID:          "dec-longer-is-larger",
		Topic:       "decimals",
		Name:        "Longer decimal is larger",
		Description: "Believes more digits after the point means a bigger number; e.g., 0.25 > 0.5",
		EvidencePatterns: []string{
			"0.25 chosen as larger than 0.5",
			"0.125 chosen as larger than 0.2",
		},
		RemediationTemplate: "Line up the decimal points and compare digit by digit from the left. Padding with zeros helps: 0.5 is 0.50, which is more than 0.25.",
	},
	{
		ID:          "dec-point-ignored",
		Topic:       "decimals",
		Name:        "Decimal point ignored in calculation",
		Description: "Computes with the digits as whole numbers and drops or misplaces the point; e.g., 0.3 + 0.4 = 7",
		EvidencePatterns: []string{
			"0.3 + 0.4 = 7",
			"answer is the whole-number result with no decimal point",
		},
		RemediationTemplate: "Estimate first: 0.3 and 0.4 are both less than 1, so the sum must be less than 2. Use the estimate to check where the decimal point belongs.",
	},
	{
		ID:          "dec-shift-direction",
		Topic:       "decimals",
		Name:        "Shifts the decimal point the wrong way",
		Description: "Moves the point left when multiplying by 10, or right when dividing; e.g., 3.5 × 10 = 0.35",
		EvidencePatterns: []string{
			"3.5 × 10 = 0.35",
			"42 ÷ 10 = 420",
		},
		RemediationTemplate: "Multiplying by 10 makes a number bigger, so the digits move one place left (the point moves right). Check: is your answer bigger or smaller than what you started with?",
	},

	// Place value (3)
	{
		ID:          "pv-place-swap",
		Topic:       "place-value",
		Name:        "Place value positions swapped",
		Description: "Confuses ones/tens/hundreds positions; e.g., reads 305 as 350",
		EvidencePatterns: []string{
			"305 read as 350",
			"1023 written as 1032",
		},
		RemediationTemplate: "Write the number in a place value chart (hundreds | tens | ones) and read each column aloud before writing the number.",
	},
	{
		ID:          "pv-zero-placeholder",
		Topic:       "place-value",
		Name:        "Zero placeholder ignored",
		Description: "Drops or ignores zero in place value; e.g., 407 becomes 47",
		EvidencePatterns: []string{
			"407 written as 47",
			"3006 written as 36",
		},
		RemediationTemplate: "Zero holds a place. In 407 the zero says 'no tens' — without it the 4 would slide into the tens place and the number would change.",
	},
	{
		ID:          "pv-digit-count-compare",
		Topic:       "place-value",
		Name:        "Compares numbers by leading digit",
		Description: "Compares numbers by first digit alone; thinks 99 > 100 because 9 > 1",
		EvidencePatterns: []string{
			"99 chosen as larger than 100",
		},
		RemediationTemplate: "Count the digits first: a number with more digits is larger. Only when the digit counts match do you compare digit by digit.",
	},

	// Integer arithmetic (3)
	{
		ID:          "int-no-carry",
		Topic:       "integers",
		Name:        "Forgot to carry",
		Description: "Adds columns independently without carrying; e.g., 47 + 38 = 715",
		EvidencePatterns: []string{
			"47 + 38 = 715",
			"answer has more digits than expected",
		},
		RemediationTemplate: "When a column adds to 10 or more, write the ones digit and carry the tens digit to the next column. Work one column at a time, right to left.",
	},
	{
		ID:          "int-no-borrow",
		Topic:       "integers",
		Name:        "Forgot to borrow",
		Description: "Subtracts the smaller digit from the larger in each column regardless of position; e.g., 42 - 17 = 35",
		EvidencePatterns: []string{
			"42 - 17 = 35",
			"503 - 267 = 344",
		},
		RemediationTemplate: "Always subtract the bottom digit from the top digit. If the top digit is smaller, borrow from the next column before subtracting.",
	},
	{
		ID:          "int-sign-confusion",
		Topic:       "integers",
		Name:        "Operation sign confused",
		Description: "Adds when the problem asks for subtraction, or the reverse",
		EvidencePatterns: []string{
			"5 - 3 = 8",
			"12 + 7 = 5",
		},
		RemediationTemplate: "Circle the operation sign before starting. Say the problem in words ('five take away three') to lock in which operation to use.",
	},
}
