package usecase

import "fmt"

const classificationPrompt = `
Classifique o seguinte e-mail como 'Produtivo' ou 'Improdutivo' e sugira uma resposta curta e adequada.
Formato da sua resposta (use exatamente este formato):
Classificação: [categoria]
Resposta Sugerida: [resposta]
---
E-mail para classificar:
"%s"
`

// BuildPrompt embeds emailText in the fixed classification instruction.
func BuildPrompt(emailText string) string {
	return fmt.Sprintf(classificationPrompt, emailText)
}
