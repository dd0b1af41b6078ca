package questions

import "fmt"

func buildPrompt(req Request) string {
	productName := req.ProductName
	displayName := productName
	if displayName == "" {
		displayName = "Generic Product"
	}
	categoryName := req.Category
	if categoryName == "" {
		categoryName = "General"
	}
	productContext := req.Description
	if productContext == "" {
		productContext = fmt.Sprintf("A product in the %s category", req.Category)
	}

	return fmt.Sprintf(`
You are helping create a product transparency form for everyday buyers and businesses who want to know important details about products they're purchasing.

Product to Analyze:
- Product Name: "%[1]s"
- Category: "%[2]s"
- Context: %[3]s

Your Task: Generate exactly 3 simple, clear questions that a buyer would reasonably ask about "%[4]s" to make an informed purchasing decision.

Critical Requirements:
1. Questions should be SIMPLE and easy to understand for regular buyers
2. Focus on practical concerns like quality, safety, warranty, and value
3. Make questions specific to "%[4]s" but keep them accessible
4. Avoid technical jargon, regulatory terms, or complex compliance language
5. Think like a smart consumer who wants transparency but isn't an expert

Question Categories (choose the most relevant):
- Product quality and durability
- Warranty and customer support
- Safety features and certifications
- Materials and manufacturing quality
- Environmental friendliness
- Value and cost considerations

Format as JSON array with this EXACT structure:
[
  {
    "id": "buyer_question_1",
    "question": "Simple question about %[4]s?",
    "type": "text|number|boolean|select",
    "required": true|false,
    "options": ["option1", "option2"] // only for select type
  }
]

EXAMPLES of good buyer-friendly questions:
- For "iPhone 15" (Electronics): "What is the warranty period for the iPhone 15?"
- For "Organic Almond Milk" (Food): "Is this almond milk certified organic?"
- For "Nike Air Max" (Clothing): "What materials are used in the Nike Air Max shoes?"
- For "Tesla Model 3" (Automotive): "What is the expected battery life for the Tesla Model 3?"

Generate questions that a regular buyer would ask about "%[4]s".
`, displayName, categoryName, productContext, productName)
}
