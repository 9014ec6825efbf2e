package resource

import "github.com/jsamuelsen11/disaster-response-web/internal/domain/form"

type opt = form.Option

// Enumerations shared by forms and list views.
var (
	ShelterStatus = form.NewEnum("aberto",
		opt{Value: "aberto", Label: "Aberto"},
		opt{Value: "lotado", Label: "Lotado"},
		opt{Value: "fechado_temporariamente", Label: "Fechado Temporariamente"},
		opt{Value: "fechado", Label: "Fechado"},
	)

	AlertSeverity = form.NewEnum("",
		opt{Value: "informativo", Label: "Informativo"},
		opt{Value: "moderado", Label: "Moderado"},
		opt{Value: "severo", Label: "Severo"},
		opt{Value: "extremo", Label: "Extremo"},
	)

	// AlertEventType only labels list cells; the form field is free text.
	AlertEventType = form.NewEnum("",
		opt{Value: "enchente_iminente", Label: "Enchente Iminente"},
		opt{Value: "deslizamento_risco", Label: "Risco de Deslizamento"},
		opt{Value: "chuva_intensa_geral", Label: "Chuvas Intensas (Geral)"},
		opt{Value: "incendio_foco_detectado", Label: "Foco de Incêndio Detectado"},
		opt{Value: "manutencao_sirene", Label: "Manutenção de Sirene"},
		opt{Value: "enchente_risco", Label: "Risco de Enchente"},
	)

	RiskLevel = form.NewEnum("medio",
		opt{Value: "baixo", Label: "Baixo"},
		opt{Value: "medio", Label: "Médio"},
		opt{Value: "alto", Label: "Alto"},
		opt{Value: "critico", Label: "Crítico"},
	)

	OccurrenceStatus = form.NewEnum("ativa",
		opt{Value: "ativa", Label: "Ativa"},
		opt{Value: "em_atendimento", Label: "Em Atendimento"},
		opt{Value: "controlada", Label: "Controlada"},
		opt{Value: "finalizada", Label: "Finalizada"},
	)

	CampaignType = form.NewEnum("",
		opt{Value: "prevencao", Label: "Prevenção"},
		opt{Value: "arrecadacao_doacoes", Label: "Arrecadação de Doações"},
		opt{Value: "conscientizacao", Label: "Conscientização"},
		opt{Value: "voluntariado", Label: "Voluntariado"},
		opt{Value: "abrigo_temporario", Label: "Abrigo Temporário"},
	)

	CampaignStatus = form.NewEnum("",
		opt{Value: "planejamento", Label: "Planejamento"},
		opt{Value: "ativa", Label: "Ativa"},
		opt{Value: "concluida", Label: "Concluída"},
		opt{Value: "cancelada", Label: "Cancelada"},
	)

	ReportType = form.NewEnum("informacao_util",
		opt{Value: "informacao_util", Label: "Informação Útil"},
		opt{Value: "confirmacao_risco", Label: "Confirmação de Risco"},
		opt{Value: "pedido_ajuda", Label: "Pedido de Ajuda"},
		opt{Value: "feedback_servico", Label: "Feedback sobre Serviço"},
		opt{Value: "condicao_abrigo", Label: "Condição do Abrigo"},
	)

	ReportValidation = form.NewEnum("pendente",
		opt{Value: "pendente", Label: "Pendente"},
		opt{Value: "validado", Label: "Validado"},
		opt{Value: "rejeitado", Label: "Rejeitado"},
		opt{Value: "em_analise", Label: "Em Análise"},
	)
)

var shelterFields = []form.Field{
	{Name: "nomeAbrigo", Label: "Nome do Abrigo", Kind: form.RequiredString},
	{Name: "enderecoCompleto", Label: "Endereço Completo", Kind: form.RequiredString},
	{Name: "latitudeAbrigo", Label: "Latitude", Kind: form.RequiredNumber, Number: form.Float},
	{Name: "longitudeAbrigo", Label: "Longitude", Kind: form.RequiredNumber, Number: form.Float},
	{Name: "capacidadeMaximaPessoas", Label: "Capacidade Máxima", Kind: form.OptionalNumber, Number: form.Int},
	{Name: "vagasDisponiveisAtual", Label: "Vagas Disponíveis", Kind: form.OptionalNumber, Number: form.Int},
	{Name: "recursosOferecidos", Label: "Recursos Oferecidos", Kind: form.OptionalString},
	{Name: "contatoResponsavelAbrigo", Label: "Contato do Responsável", Kind: form.OptionalString},
	{Name: "telefoneContatoAbrigo", Label: "Telefone de Contato", Kind: form.OptionalString},
	{Name: "statusOperacional", Label: "Status Operacional", Kind: form.OptionalString, Enum: ShelterStatus},
	{Name: "observacoesAdicionais", Label: "Observações Adicionais", Kind: form.OptionalString, Input: form.InputTextarea},
}

// Shelters are safe shelters ("abrigos seguros").
var Shelters = &Resource{
	Slug:         "abrigos-seguros",
	Singular:     "Abrigo",
	Plural:       "Abrigos Seguros",
	ListTitle:    "Abrigos Seguros Disponíveis",
	CreateTitle:  "Cadastrar Novo Abrigo Seguro",
	EditTitle:    "Editar Abrigo Seguro",
	EmptyMessage: "Nenhum abrigo seguro encontrado.",
	IDField:      "idAbrigo",
	TitleField:   "nomeAbrigo",
	Columns: []Column{
		{Field: "nomeAbrigo", Label: "Nome"},
		{Field: "enderecoCompleto", Label: "Endereço"},
		{Field: "statusOperacional", Label: "Status", Format: FormatLabel, Labels: ShelterStatus},
		{Field: "vagasDisponiveisAtual", Label: "Vagas Disponíveis"},
		{Field: "recursosOferecidos", Label: "Recursos"},
	},
	Create: form.MustSchema(shelterFields...),
	Edit:   form.MustSchema(shelterFields...),
}

var alertFields = []form.Field{
	{Name: "emitidoPorUsuario", Label: "ID do Usuário Emissor", Kind: form.RequiredAssociation, Key: "idUsuario"},
	{Name: "titulo", Label: "Título", Kind: form.RequiredString},
	{Name: "descricaoCompleta", Label: "Descrição Completa", Kind: form.RequiredString, Input: form.InputTextarea},
	{Name: "tipoEventoAlerta", Label: "Tipo do Evento (ex: enchente_iminente)", Kind: form.RequiredString},
	{Name: "nivelSeveridadeAlerta", Label: "Nível de Severidade", Kind: form.RequiredString, Enum: AlertSeverity},
	{Name: "instrucoesSeguranca", Label: "Instruções de Segurança", Kind: form.OptionalString, Input: form.InputTextarea},
	{Name: "areaDeRiscoAssociada", Label: "ID da Área de Risco Associada", Kind: form.OptionalAssociation, Key: "idAreaRisco"},
}

// Alerts are public alerts issued by a user.
var Alerts = &Resource{
	Slug:         "alertas",
	Singular:     "Alerta",
	Plural:       "Alertas",
	ListTitle:    "Alertas Atuais",
	CreateTitle:  "Criar Novo Alerta",
	EditTitle:    "Editar Alerta",
	EmptyMessage: "Nenhum alerta encontrado.",
	IDField:      "idAlerta",
	TitleField:   "titulo",
	Columns: []Column{
		{Field: "titulo", Label: "Título"},
		{Field: "tipoEventoAlerta", Label: "Tipo", Format: FormatLabel, Labels: AlertEventType},
		{Field: "nivelSeveridadeAlerta", Label: "Severidade", Format: FormatLabel, Labels: AlertSeverity},
		{Field: "dataHoraEmissao", Label: "Emitido em", Format: FormatDateTime},
	},
	Create: form.MustSchema(alertFields...),
	Edit:   form.MustSchema(alertFields...),
}

var riskAreaFields = []form.Field{
	{Name: "nomeArea", Label: "Nome da Área", Kind: form.RequiredString},
	{Name: "descricaoRisco", Label: "Descrição do Risco", Kind: form.OptionalString, Input: form.InputTextarea},
	{Name: "tipoRisco", Label: "Tipo de Risco (ex: deslizamento, enchente)", Kind: form.RequiredString},
	{Name: "latitudeCentro", Label: "Latitude do Centro", Kind: form.RequiredNumber, Number: form.Float},
	{Name: "longitudeCentro", Label: "Longitude do Centro", Kind: form.RequiredNumber, Number: form.Float},
	{Name: "raioKm", Label: "Raio em Km", Kind: form.OptionalNumber, Number: form.Float},
	{Name: "poligonoCoordenadas", Label: "Polígono de Coordenadas (ex: GeoJSON)", Kind: form.OptionalString, Input: form.InputTextarea},
	{Name: "nivelRiscoPermanente", Label: "Nível de Risco Permanente", Kind: form.OptionalString, Enum: RiskLevel},
}

// RiskAreas are mapped areas of permanent risk.
var RiskAreas = &Resource{
	Slug:         "areas-de-risco",
	Singular:     "Área de Risco",
	Plural:       "Áreas de Risco",
	Feminine:     true,
	ListTitle:    "Áreas de Risco Identificadas",
	CreateTitle:  "Cadastrar Nova Área de Risco",
	EditTitle:    "Editar Área de Risco",
	EmptyMessage: "Nenhuma área de risco encontrada.",
	IDField:      "idAreaRisco",
	TitleField:   "nomeArea",
	Columns: []Column{
		{Field: "nomeArea", Label: "Nome"},
		{Field: "tipoRisco", Label: "Tipo de Risco", Format: FormatLabel},
		{Field: "nivelRiscoPermanente", Label: "Nível de Risco Permanente", Format: FormatLabel, Labels: RiskLevel},
		{Field: "dataIdentificacao", Label: "Identificada em", Format: FormatDate},
	},
	Create: form.MustSchema(riskAreaFields...),
	Edit:   form.MustSchema(riskAreaFields...),
}

var occurrenceFields = []form.Field{
	{Name: "tituloOcorrencia", Label: "Título da Ocorrência", Kind: form.RequiredString},
	{Name: "descricaoDetalhada", Label: "Descrição Detalhada", Kind: form.OptionalString, Input: form.InputTextarea},
	{Name: "tipoOcorrencia", Label: "Tipo da Ocorrência (ex: enchente_confirmada)", Kind: form.RequiredString},
	{Name: "latitudeOcorrencia", Label: "Latitude", Kind: form.RequiredNumber, Number: form.Float},
	{Name: "longitudeOcorrencia", Label: "Longitude", Kind: form.RequiredNumber, Number: form.Float},
	{Name: "statusOcorrencia", Label: "Status da Ocorrência", Kind: form.OptionalString, Enum: OccurrenceStatus},
	{Name: "impactoEstimado", Label: "Impacto Estimado", Kind: form.OptionalString},
	{Name: "usuarioReportou", Label: "ID do Usuário que Reportou", Kind: form.OptionalAssociation, Key: "idUsuario"},
	{Name: "alertaRelacionado", Label: "ID do Alerta Relacionado", Kind: form.OptionalAssociation, Key: "idAlerta"},
	{Name: "areaRiscoAfetada", Label: "ID da Área de Risco Afetada", Kind: form.OptionalAssociation, Key: "idAreaRisco"},
}

// Occurrences are reported incidents.
var Occurrences = &Resource{
	Slug:         "ocorrencias",
	Singular:     "Ocorrência",
	Plural:       "Ocorrências",
	Feminine:     true,
	ListTitle:    "Ocorrências Registradas",
	CreateTitle:  "Registrar Nova Ocorrência",
	EditTitle:    "Editar Ocorrência",
	EmptyMessage: "Nenhuma ocorrência encontrada.",
	IDField:      "idOcorrencia",
	TitleField:   "tituloOcorrencia",
	Columns: []Column{
		{Field: "tituloOcorrencia", Label: "Título"},
		{Field: "tipoOcorrencia", Label: "Tipo", Format: FormatLabel},
		{Field: "statusOcorrencia", Label: "Status", Format: FormatLabel, Labels: OccurrenceStatus},
		{Field: "impactoEstimado", Label: "Impacto Estimado"},
		{Field: "dataHoraOcorrencia", Label: "Data/Hora", Format: FormatDateTime},
	},
	Create: form.MustSchema(occurrenceFields...),
	Edit:   form.MustSchema(occurrenceFields...),
}

// Campaigns are listed only; the API exposes no form for them here.
var Campaigns = &Resource{
	Slug:         "campanhas",
	Singular:     "Campanha",
	Plural:       "Campanhas",
	Feminine:     true,
	ListTitle:    "Campanhas",
	EmptyMessage: "Nenhuma campanha encontrada.",
	IDField:      "idCampanha",
	TitleField:   "nomeCampanha",
	Columns: []Column{
		{Field: "nomeCampanha", Label: "Nome"},
		{Field: "tipoCampanha", Label: "Tipo", Format: FormatLabel, Labels: CampaignType},
		{Field: "statusCampanha", Label: "Status", Format: FormatLabel, Labels: CampaignStatus},
		{Field: "dataInicioCampanha", Label: "Início", Format: FormatDate},
		{Field: "dataFimCampanha", Label: "Fim", Format: FormatDate},
	},
}

func reportFields(mode Mode) []form.Field {
	author := form.Field{
		Name:     "usuarioAutor",
		Label:    "Seu ID de Usuário (obrigatório se não anônimo)",
		Kind:     form.RequiredAssociation,
		Key:      "idUsuario",
		OmitWhen: "anonimo",
	}
	if mode == ModeEdit {
		author.Label = "ID do Usuário Autor"
		author.Kind = form.OptionalAssociation
	}

	fields := []form.Field{
		{Name: "anonimo", Label: "Enviar como Anônimo", Kind: form.OptionalBoolean},
		author,
		{Name: "tituloRelato", Label: "Título do Relato", Kind: form.OptionalString},
		{Name: "textoRelato", Label: "Texto do Relato", Kind: form.RequiredString, Input: form.InputTextarea},
		{Name: "tipoRelato", Label: "Tipo do Relato", Kind: form.OptionalString, Enum: ReportType},
		{Name: "latitudeRelato", Label: "Latitude", Kind: form.OptionalNumber, Number: form.Float},
		{Name: "longitudeRelato", Label: "Longitude", Kind: form.OptionalNumber, Number: form.Float},
		{Name: "ocorrenciaAssociada", Label: "ID da Ocorrência Associada", Kind: form.OptionalAssociation, Key: "idOcorrencia"},
		{Name: "alertaAssociado", Label: "ID do Alerta Associado", Kind: form.OptionalAssociation, Key: "idAlerta"},
		{Name: "areaRiscoAssociada", Label: "ID da Área de Risco Associada", Kind: form.OptionalAssociation, Key: "idAreaRisco"},
		{Name: "abrigoAssociado", Label: "ID do Abrigo Associado", Kind: form.OptionalAssociation, Key: "idAbrigo"},
		{Name: "campanhaAssociada", Label: "ID da Campanha Associada", Kind: form.OptionalAssociation, Key: "idCampanha"},
	}
	if mode == ModeEdit {
		fields = append(fields, form.Field{
			Name: "statusValidacaoRelato", Label: "Status de Validação", Kind: form.OptionalString, Enum: ReportValidation,
		})
	}
	return fields
}

// Reports are user reports, optionally anonymous.
var Reports = &Resource{
	Slug:         "relatos",
	Singular:     "Relato",
	Plural:       "Relatos",
	ListTitle:    "Relatos de Usuários",
	CreateTitle:  "Enviar Novo Relato",
	EditTitle:    "Editar Relato",
	EmptyMessage: "Nenhum relato encontrado.",
	IDField:      "idRelato",
	TitleField:   "tituloRelato",
	Columns: []Column{
		{Field: "tituloRelato", Label: "Título"},
		{Field: "tipoRelato", Label: "Tipo", Format: FormatLabel, Labels: ReportType},
		{Field: "statusValidacaoRelato", Label: "Status", Format: FormatLabel, Labels: ReportValidation},
		{Field: "anonimo", Label: "Anônimo", Format: FormatBool},
		{Field: "dataHoraRelato", Label: "Enviado em", Format: FormatDateTime},
	},
	Create: form.MustSchema(reportFields(ModeCreate)...),
	Edit:   form.MustSchema(reportFields(ModeEdit)...),
}
