// Package i18n holds the localized UI strings. The active catalog is chosen
// once at startup with Init and read with T.
package i18n

import (
	"fmt"
	"strings"
	"sync/atomic"

	"golang.org/x/text/language"
)

// MessageKey identifies one UI string.
type MessageKey int

const (
	MsgAppTitle MessageKey = iota
	MsgLoading
	MsgAllNamespaces
	MsgTabNamespaces
	MsgTabPods
	MsgTabJobs
	MsgTabReplicationControllers
	MsgTabDaemonSets
	MsgTabDeployments

	MsgColName
	MsgColNamespace
	MsgColStatus
	MsgColPods
	MsgColRestarts
	MsgColAge
	MsgColImages
	MsgColNode

	MsgEmptyNamespaces
	MsgEmptyList
	MsgNoLogs
	MsgItems
	MsgLines

	MsgStatusSuccess
	MsgStatusPending
	MsgStatusWarning

	// Logs menu on a replication controller card.
	MsgRCListLogsTooltip
	MsgRCListLogsLabel
	MsgRCListLogsPodLabel
	MsgRCListLogsRunningSinceLabel
	MsgRCListLogsNotRunningLabel
	MsgRCListLogsRestarted
	MsgRCListLogsEmpty

	MsgDetailInfo
	MsgDetailPods
	MsgDetailEvents
	MsgDetailStrategy
	MsgDetailRollingUpdate
	MsgDetailMaxSurge
	MsgDetailMaxUnavailable
	MsgDetailReplicas

	MsgDisconnected
	MsgForbidden
	MsgConflict
	MsgRateLimited
	MsgCopied
	MsgNavigationFailed
	MsgErrorScreenTitle
	MsgErrorScreenKeys
	MsgProdBanner

	MsgHelpList
	MsgHelpRCList
	MsgHelpDetail
	MsgHelpLogs
	MsgHelpMenu
	MsgFilterPlaceholder

	msgCount
)

type catalog [msgCount]string

var english = catalog{
	MsgAppTitle:                  "KDASH",
	MsgLoading:                   "Loading...",
	MsgAllNamespaces:             "all namespaces",
	MsgTabNamespaces:             "Namespaces",
	MsgTabPods:                   "Pods",
	MsgTabJobs:                   "Jobs",
	MsgTabReplicationControllers: "RCs",
	MsgTabDaemonSets:             "DaemonSets",
	MsgTabDeployments:            "Deploys",

	MsgColName:      "NAME",
	MsgColNamespace: "NAMESPACE",
	MsgColStatus:    "STATUS",
	MsgColPods:      "PODS",
	MsgColRestarts:  "RESTARTS",
	MsgColAge:       "AGE",
	MsgColImages:    "IMAGES",
	MsgColNode:      "NODE",

	MsgEmptyNamespaces: "No namespace available",
	MsgEmptyList:       "Nothing to show in this namespace",
	MsgNoLogs:          "No logs available",
	MsgItems:           "items",
	MsgLines:           "lines",

	MsgStatusSuccess: "ok",
	MsgStatusPending: "pending",
	MsgStatusWarning: "warning",

	MsgRCListLogsTooltip:           "Logs",
	MsgRCListLogsLabel:             "Logs",
	MsgRCListLogsPodLabel:          "Pod",
	MsgRCListLogsRunningSinceLabel: "Running since",
	MsgRCListLogsNotRunningLabel:   "Not running",
	MsgRCListLogsRestarted:         "restarted",
	MsgRCListLogsEmpty:             "No pods",

	MsgDetailInfo:           "Details",
	MsgDetailPods:           "Pods",
	MsgDetailEvents:         "Events",
	MsgDetailStrategy:       "Strategy",
	MsgDetailRollingUpdate:  "Rolling update strategy",
	MsgDetailMaxSurge:       "Max surge",
	MsgDetailMaxUnavailable: "Max unavailable",
	MsgDetailReplicas:       "Replicas",

	MsgDisconnected:     "Connection lost. Press 'r' to reconnect",
	MsgForbidden:        "Access denied to namespace '%s'",
	MsgConflict:         "Conflict: the resource was modified. Try again.",
	MsgRateLimited:      "Too many requests. Waiting...",
	MsgCopied:           "Copied: %s",
	MsgNavigationFailed: "Could not open %s: %v",
	MsgErrorScreenTitle: "KDASH - Connection error",
	MsgErrorScreenKeys:  "[r] Retry  [q] Quit",
	MsgProdBanner:       "PRODUCTION NAMESPACE: %s",

	MsgHelpList:          "j/k:nav  g/G:top/bottom  enter:open  /:filter  t:sort  r:refresh  c:copy  q:quit",
	MsgHelpRCList:        "j/k:nav  enter:open  l:logs  /:filter  t:sort  r:refresh  q:quit",
	MsgHelpDetail:        "pgup/pgdn:scroll  g/G:top/bottom  y:yaml  r:refresh  esc:back",
	MsgHelpLogs:          "pgup/pgdn:scroll  G:bottom  w:wrap  p:previous  esc:back",
	MsgHelpMenu:          "j/k:nav  enter:logs  r:refresh  esc:close",
	MsgFilterPlaceholder: "filter...",
}

var french = catalog{
	MsgAppTitle:                  "KDASH",
	MsgLoading:                   "Chargement...",
	MsgAllNamespaces:             "tous les namespaces",
	MsgTabNamespaces:             "Namespaces",
	MsgTabPods:                   "Pods",
	MsgTabJobs:                   "Jobs",
	MsgTabReplicationControllers: "RCs",
	MsgTabDaemonSets:             "DaemonSets",
	MsgTabDeployments:            "Deploys",

	MsgColName:      "NOM",
	MsgColNamespace: "NAMESPACE",
	MsgColStatus:    "STATUT",
	MsgColPods:      "PODS",
	MsgColRestarts:  "REDÉMARRAGES",
	MsgColAge:       "ÂGE",
	MsgColImages:    "IMAGES",
	MsgColNode:      "NŒUD",

	MsgEmptyNamespaces: "Aucun namespace accessible",
	MsgEmptyList:       "Rien à afficher dans ce namespace",
	MsgNoLogs:          "Pas de logs disponibles",
	MsgItems:           "éléments",
	MsgLines:           "lignes",

	MsgStatusSuccess: "ok",
	MsgStatusPending: "en attente",
	MsgStatusWarning: "alerte",

	MsgRCListLogsTooltip:           "Logs",
	MsgRCListLogsLabel:             "Logs",
	MsgRCListLogsPodLabel:          "Pod",
	MsgRCListLogsRunningSinceLabel: "Démarré depuis",
	MsgRCListLogsNotRunningLabel:   "Arrêté",
	MsgRCListLogsRestarted:         "redémarré",
	MsgRCListLogsEmpty:             "Aucun pod",

	MsgDetailInfo:           "Détails",
	MsgDetailPods:           "Pods",
	MsgDetailEvents:         "Événements",
	MsgDetailStrategy:       "Stratégie",
	MsgDetailRollingUpdate:  "Stratégie de mise à jour progressive",
	MsgDetailMaxSurge:       "Surplus max",
	MsgDetailMaxUnavailable: "Indisponibles max",
	MsgDetailReplicas:       "Replicas",

	MsgDisconnected:     "Connexion perdue. Appuyez sur 'r' pour reconnecter",
	MsgForbidden:        "Accès refusé au namespace '%s'",
	MsgConflict:         "Conflit : la ressource a été modifiée. Réessayez.",
	MsgRateLimited:      "Trop de requêtes. Pause...",
	MsgCopied:           "Copié: %s",
	MsgNavigationFailed: "Impossible d'ouvrir %s : %v",
	MsgErrorScreenTitle: "KDASH - Erreur de connexion",
	MsgErrorScreenKeys:  "[r] Réessayer  [q] Quitter",
	MsgProdBanner:       "NAMESPACE DE PRODUCTION : %s",

	MsgHelpList:          "j/k:nav  g/G:début/fin  enter:ouvrir  /:filtre  t:tri  r:refresh  c:copier  q:quit",
	MsgHelpRCList:        "j/k:nav  enter:ouvrir  l:logs  /:filtre  t:tri  r:refresh  q:quit",
	MsgHelpDetail:        "pgup/pgdn:scroll  g/G:début/fin  y:yaml  r:refresh  esc:retour",
	MsgHelpLogs:          "pgup/pgdn:scroll  G:fin  w:wrap  p:précédents  esc:retour",
	MsgHelpMenu:          "j/k:nav  enter:logs  r:refresh  esc:fermer",
	MsgFilterPlaceholder: "filtre...",
}

var (
	supported = []language.Tag{language.English, language.French}
	catalogs  = map[language.Tag]*catalog{
		language.English: &english,
		language.French:  &french,
	}
	matcher = language.NewMatcher(supported)

	active atomic.Pointer[catalog]
)

func init() {
	active.Store(&english)
}

// Init selects the catalog closest to lang (a BCP 47 tag such as "fr-CA").
// Unknown or empty tags fall back to English. It returns the chosen tag.
func Init(lang string) language.Tag {
	tag := Match(lang)
	active.Store(catalogs[tag])
	return tag
}

// Match returns the supported tag closest to lang. POSIX locale names
// such as "fr_FR.UTF-8" are accepted too.
func Match(lang string) language.Tag {
	if !strings.ContainsAny(lang, ",;") {
		if i := strings.IndexAny(lang, ".@"); i >= 0 {
			lang = lang[:i]
		}
		lang = strings.ReplaceAll(lang, "_", "-")
	}
	if lang == "" {
		return language.English
	}
	desired, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(desired) == 0 {
		return language.English
	}
	_, idx, conf := matcher.Match(desired...)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// T returns the localized string for key.
func T(key MessageKey) string {
	if key < 0 || key >= msgCount {
		return ""
	}
	return active.Load()[key]
}

// Tf formats the localized string for key with args.
func Tf(key MessageKey, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}
