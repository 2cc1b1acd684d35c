package dto

// ClassifyRequest is the body of POST /api/classificador
type ClassifyRequest struct {
	EmailText string `json:"emailText"`
}

type ClassifyResponse struct {
	Classification    string `json:"classification"`
	SuggestedResponse string `json:"suggestedResponse"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// User-facing messages
const (
	MsgEmailTextRequired = "O texto do e-mail é obrigatório."
	MsgClassifyFailed    = "Ocorreu um erro no servidor ao processar sua solicitação."
	MsgListFailed        = "Erro ao buscar dados do banco."
	MsgInvalidID         = "ID inválido."
	MsgNotFound          = "Classificação não encontrada."
)
