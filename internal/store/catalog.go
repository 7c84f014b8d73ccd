package store

import "github.com/MKhiriev/epqs-catalog/models"

// defaultCatalog is the tool catalog seeded by InitializeSchema.
var defaultCatalog = []models.Tool{
	{Name: "5 Porquês", Description: "Ferramenta para análise de causa raiz", Category: "Qualidade", FilePath: "5_porques.html"},
	{Name: "5S", Description: "Metodologia de organização do local de trabalho", Category: "Organização", FilePath: "5s.html"},
	{Name: "8D", Description: "Metodologia de resolução de problemas", Category: "Qualidade", FilePath: "8d.html"},
	{Name: "APQP", Description: "Planejamento Avançado da Qualidade do Produto", Category: "Planejamento", FilePath: "apqp.html"},
	{Name: "CEP", Description: "Controle Estatístico de Processo", Category: "Estatística", FilePath: "cep.html"},
	{Name: "Controle de Injeção", Description: "Controle de processo de injeção", Category: "Processo", FilePath: "controle_injecao.html"},
	{Name: "Cronoanálise", Description: "Análise de tempos e métodos", Category: "Produtividade", FilePath: "cronoanalise.html"},
	{Name: "Dashboard de Indicadores", Description: "Painel de indicadores", Category: "Gestão", FilePath: "DashboarddeIndicadores.html"},
	{Name: "Diagrama de Dispersão", Description: "Análise de correlação entre variáveis", Category: "Estatística", FilePath: "diagrama-dispersao.html"},
	{Name: "DMAIC", Description: "Metodologia Seis Sigma", Category: "Qualidade", FilePath: "dmaic.html"},
	{Name: "Estamparia", Description: "Controle de processo de estamparia", Category: "Processo", FilePath: "estamparia.html"},
	{Name: "FMEA", Description: "Análise de Modo e Efeito de Falha", Category: "Qualidade", FilePath: "fmea.html"},
	{Name: "Folha de Verificação", Description: "Coleta de dados estruturada", Category: "Qualidade", FilePath: "folha_verificacao.html"},
	{Name: "Gerenciador de Dashboards", Description: "Gestão de painéis", Category: "Gestão", FilePath: "GerenciadordeDashboards.html"},
	{Name: "Histograma", Description: "Análise de distribuição de dados", Category: "Estatística", FilePath: "histograma.html"},
	{Name: "Ishikawa", Description: "Diagrama de causa e efeito", Category: "Qualidade", FilePath: "ishikawa.html"},
	{Name: "Kaizen", Description: "Melhoria contínua", Category: "Melhoria", FilePath: "kaizen.html"},
	{Name: "Manutenção", Description: "Gestão de manutenção", Category: "Manutenção", FilePath: "manutencao.html"},
	{Name: "Mapeamento de Processos", Description: "Visualização de processos", Category: "Processo", FilePath: "mapeamento-de-processos.html"},
	{Name: "MASP", Description: "Método de Análise e Solução de Problemas", Category: "Qualidade", FilePath: "masp.html"},
	{Name: "Matriz Esforço-Impacto", Description: "Priorização de ações", Category: "Gestão", FilePath: "matriz-esforco-impacto.html"},
	{Name: "Matriz GUT", Description: "Priorização por Gravidade, Urgência e Tendência", Category: "Gestão", FilePath: "matriz-gut.html"},
	{Name: "MSA", Description: "Análise do Sistema de Medição", Category: "Qualidade", FilePath: "msa.html"},
	{Name: "Pareto", Description: "Análise de Pareto", Category: "Estatística", FilePath: "pareto.html"},
	{Name: "Planejamento", Description: "Ferramenta de planejamento", Category: "Planejamento", FilePath: "planejamento.html"},
	{Name: "PPAP", Description: "Processo de Aprovação de Peça de Produção", Category: "Qualidade", FilePath: "ppap.html"},
	{Name: "Relatório A3", Description: "Relatório estruturado A3", Category: "Gestão", FilePath: "relatorio-a3.html"},
	{Name: "Sucata", Description: "Controle de sucata", Category: "Qualidade", FilePath: "sucata.html"},
	{Name: "SWOT", Description: "Análise de forças, fraquezas, oportunidades e ameaças", Category: "Estratégia", FilePath: "swot.html"},
	{Name: "Treinamento", Description: "Gestão de treinamentos", Category: "RH", FilePath: "treinamento.html"},
	{Name: "VSM", Description: "Mapeamento do Fluxo de Valor", Category: "Processo", FilePath: "vsm.html"},
	{Name: "SMED", Description: "Troca Rápida de Ferramentas", Category: "Produtividade", FilePath: "smed.html"},
}
